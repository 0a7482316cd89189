package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Applies versioned SQL migrations from the migrations directory.
//
//	go run ./cmd/migrate            # migrate up
//	go run ./cmd/migrate -down 1    # roll back one step
func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	_ = godotenv.Load(".env")

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://postgres@localhost:5432/greenhill?sslmode=disable"
	}

	m, err := migrate.New("file://"+*dir, url)
	if err != nil {
		fmt.Printf("Failed to open migrations: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	if *down > 0 {
		err = m.Steps(-*down)
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	version, dirty, _ := m.Version()
	fmt.Printf("Migrations applied. version=%d dirty=%v\n", version, dirty)
}
