// Package logger wires zerolog to the console and a size-rotated file.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the application-wide logger. Before Init it writes to stderr.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures Log with the given level and log directory. The file
// writer rotates at 100MB keeping three compressed backups.
func Init(level, dir string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "app.log"),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	console := zerolog.ConsoleWriter{Out: os.Stdout}

	Log = zerolog.New(io.MultiWriter(console, fileWriter)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return nil
}
