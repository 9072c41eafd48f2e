package models

import (
	"database/sql"
	"time"
)

// User holds the gamification columns of the USERS table. Identity columns
// belong to the external identity provider and are not mapped.
type User struct {
	ID             string       `db:"ID"`
	XP             int          `db:"XP"`
	Level          int          `db:"USER_LEVEL"`
	CurrentStreak  int          `db:"CURRENT_STREAK"`
	LongestStreak  int          `db:"LONGEST_STREAK"`
	LastActiveDate sql.NullTime `db:"LAST_ACTIVE_DATE"`
	CreatedAt      time.Time    `db:"CREATED_AT"`
	UpdatedAt      time.Time    `db:"UPDATED_AT"`
}

type UserQuestionHistory struct {
	ID              string    `db:"ID"`
	UserID          string    `db:"USER_ID"`
	QuestionID      string    `db:"QUESTION_ID"`
	LastAttemptedAt time.Time `db:"LAST_ATTEMPTED_AT"`
	IsCorrect       bool      `db:"IS_CORRECT"`
	Occurrence      int       `db:"OCCURRENCE"`
}

type UserPerformanceSummary struct {
	ID             string    `db:"ID"`
	UserID         string    `db:"USER_ID"`
	SubjectID      string    `db:"SUBJECT_ID"`
	TotalAttempted int       `db:"TOTAL_ATTEMPTED"`
	TotalCorrect   int       `db:"TOTAL_CORRECT"`
	Accuracy       float64   `db:"ACCURACY"`
	UpdatedAt      time.Time `db:"UPDATED_AT"`
}

type UserAchievement struct {
	ID         string    `db:"ID"`
	UserID     string    `db:"USER_ID"`
	Code       string    `db:"CODE"`
	UnlockedAt time.Time `db:"UNLOCKED_AT"`
}
