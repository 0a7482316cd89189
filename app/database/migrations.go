package database

import (
	"database/sql"

	"greenhill-schools/app/logger"
)

// RunStartupMigrations applies small schema guards that must hold even when
// the versioned migrations have not been re-run against an older database.
func RunStartupMigrations(db *sql.DB) error {
	logger.Log.Info().Msg("running startup schema guards")

	if err := addMarkVerificationColumns(db); err != nil {
		return err
	}
	if err := addResultsPublishedColumn(db); err != nil {
		return err
	}

	logger.Log.Info().Msg("startup schema guards applied")
	return nil
}

// addMarkVerificationColumns backfills the verification columns on
// mark_records. Older databases stored marks without a verification step.
func addMarkVerificationColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'mark_records'
				AND column_name = 'verified'
			) THEN
				ALTER TABLE mark_records ADD COLUMN verified BOOLEAN NOT NULL DEFAULT false;
				ALTER TABLE mark_records ADD COLUMN verified_by UUID;
				ALTER TABLE mark_records ADD COLUMN verified_at TIMESTAMPTZ;
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		logger.Log.Error().Err(err).Msg("failed to add mark verification columns")
		return err
	}
	return nil
}

// addResultsPublishedColumn guards the publication flag on exams.
func addResultsPublishedColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'exams'
				AND column_name = 'results_published'
			) THEN
				ALTER TABLE exams ADD COLUMN results_published BOOLEAN NOT NULL DEFAULT false;
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		logger.Log.Error().Err(err).Msg("failed to add results_published column")
		return err
	}
	return nil
}
