package services

import (
	"database/sql"
	"time"

	"greenhill-schools/app/database"
	"greenhill-schools/app/logger"
)

// StartScheduler starts the background task loop. It nudges administrators
// about exams awaiting verification and flags published exams whose schedule
// window has passed without results going out.
func StartScheduler(db *sql.DB) {
	go func() {
		logger.Log.Info().Msg("scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Daily reminder at 7:30 AM, before the school day starts.
			if now.Hour() == 7 && now.Minute() == 30 {
				logPendingVerifications(db)
				logOverdueResults(db, now)
			}
		}
	}()
}

func logPendingVerifications(db *sql.DB) {
	pending, err := database.GetPendingVerificationExams(db)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to check pending verifications")
		return
	}
	for exam, count := range pending {
		logger.Log.Warn().
			Str("exam", exam).
			Int("unverified", count).
			Msg("exam has unverified marks")
	}
}

func logOverdueResults(db *sql.DB, now time.Time) {
	exams, err := database.GetScheduledPublishableExams(db, now)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to check overdue results")
		return
	}
	for _, e := range exams {
		logger.Log.Info().
			Str("exam_id", e.ID).
			Str("exam", e.Name).
			Time("ended", e.EndDate).
			Msg("exam window ended, results not yet published")
	}
}
