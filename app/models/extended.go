package models

import "time"

type DashboardStats struct {
	TotalStudents        int        `json:"total_students"`
	TotalTeachers        int        `json:"total_teachers"`
	TotalClasses         int        `json:"total_classes"`
	FeesCollected        float64    `json:"fees_collected"`
	PendingVerifications int        `json:"pending_verifications"`
	UpcomingExams        int        `json:"upcoming_exams"`
	RecentActivities     []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"time_ago"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	RawTime     time.Time `json:"-"`
}
