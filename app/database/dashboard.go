package database

import (
	"database/sql"
	"fmt"
	"time"

	"greenhill-schools/app/models"
)

// GetDashboardStats gathers the headline numbers for the admin dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE deleted_at IS NULL AND is_active = true),
			(SELECT COUNT(*) FROM users u
				JOIN user_roles ur ON ur.user_id = u.id
				JOIN roles r ON r.id = ur.role_id
				WHERE u.deleted_at IS NULL AND r.name = 'teacher'),
			(SELECT COUNT(*) FROM classes WHERE deleted_at IS NULL AND is_active = true),
			(SELECT COUNT(*) FROM mark_records mr
				JOIN exams e ON e.id = mr.exam_id
				WHERE NOT mr.verified AND e.deleted_at IS NULL AND NOT e.results_published),
			(SELECT COUNT(*) FROM exams
				WHERE deleted_at IS NULL AND start_date > NOW())
	`
	err := db.QueryRow(query).Scan(
		&stats.TotalStudents,
		&stats.TotalTeachers,
		&stats.TotalClasses,
		&stats.PendingVerifications,
		&stats.UpcomingExams,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	monthStart := time.Now().AddDate(0, 0, -30)
	stats.FeesCollected, err = GetFeesCollectedSince(db, monthStart)
	if err != nil {
		return nil, err
	}

	stats.RecentActivities, err = getRecentActivities(db)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// getRecentActivities merges the latest admissions, publications and notices
// into one feed.
func getRecentActivities(db *sql.DB) ([]models.Activity, error) {
	query := `
		SELECT 'admission', first_name || ' ' || last_name, 'New student admitted', created_at
		FROM students WHERE deleted_at IS NULL
		UNION ALL
		SELECT 'results', name, 'Exam results published', updated_at
		FROM exams WHERE deleted_at IS NULL AND results_published = true
		UNION ALL
		SELECT 'notice', title, 'Notice posted', published_at
		FROM notices WHERE deleted_at IS NULL
		ORDER BY 4 DESC
		LIMIT 10
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		a := models.Activity{}
		if err := rows.Scan(&a.Type, &a.Title, &a.Description, &a.RawTime); err != nil {
			return nil, err
		}
		a.TimeAgo = timeAgo(a.RawTime)
		switch a.Type {
		case "admission":
			a.Icon, a.Color = "user-plus", "green"
		case "results":
			a.Icon, a.Color = "award", "blue"
		default:
			a.Icon, a.Color = "bell", "amber"
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

// GetPendingVerificationExams lists exams that still have unverified marks,
// for the reminder job.
func GetPendingVerificationExams(db *sql.DB) (map[string]int, error) {
	query := `
		SELECT e.name, COUNT(*)
		FROM mark_records mr
		JOIN exams e ON e.id = mr.exam_id
		WHERE NOT mr.verified AND e.deleted_at IS NULL AND NOT e.results_published
		GROUP BY e.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending verifications: %w", err)
	}
	defer rows.Close()

	pending := map[string]int{}
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		pending[name] = count
	}
	return pending, rows.Err()
}

// GetScheduledPublishableExams returns published exams whose schedule window
// has ended, used by the scheduler to flag them for result processing.
func GetScheduledPublishableExams(db *sql.DB, now time.Time) ([]*models.Exam, error) {
	query := `
		SELECT id, name, class_id, end_date
		FROM exams
		WHERE deleted_at IS NULL AND published = true AND results_published = false AND end_date < $1
	`
	rows, err := db.Query(query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.ID, &e.Name, &e.ClassID, &e.EndDate); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
