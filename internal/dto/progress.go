package dto

import "time"

// SubjectSummary is one row of the per-subject performance rollup.
type SubjectSummary struct {
	SubjectID      string  `json:"subject_id"`
	TotalAttempted int     `json:"total_attempted"`
	TotalCorrect   int     `json:"total_correct"`
	Accuracy       float64 `json:"accuracy"`
}

// AchievementItem is an unlocked achievement.
type AchievementItem struct {
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// ProgressResponse is the student's dashboard read model.
// @Description XP, level, streaks, per-subject accuracy and achievements
type ProgressResponse struct {
	UserID         string            `json:"user_id"`
	XP             int               `json:"xp"`
	Level          int               `json:"level"`
	CurrentStreak  int               `json:"current_streak"`
	LongestStreak  int               `json:"longest_streak"`
	LastActiveDate *time.Time        `json:"last_active_date,omitempty"`
	Subjects       []SubjectSummary  `json:"subjects"`
	Achievements   []AchievementItem `json:"achievements"`
}
