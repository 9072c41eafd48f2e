package models

import (
	"database/sql"
	"time"
)

type PracticeSession struct {
	ID        string         `db:"ID"`
	UserID    string         `db:"USER_ID"`
	SubjectID sql.NullString `db:"SUBJECT_ID"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// PracticeAttempt rows are insert-only.
type PracticeAttempt struct {
	ID           string        `db:"ID"`
	SessionID    string        `db:"SESSION_ID"`
	UserID       string        `db:"USER_ID"`
	QuestionID   string        `db:"QUESTION_ID"`
	ChosenOption int           `db:"CHOSEN_OPTION"`
	IsCorrect    bool          `db:"IS_CORRECT"`
	TimeSpent    sql.NullInt64 `db:"TIME_SPENT"`
	AttemptedAt  time.Time     `db:"ATTEMPTED_AT"`
}

type MockSession struct {
	ID             string    `db:"ID"`
	UserID         string    `db:"USER_ID"`
	SubjectID      string    `db:"SUBJECT_ID"`
	Score          int       `db:"SCORE"`
	TimeSpent      int       `db:"TIME_SPENT"`
	TimeLimit      int       `db:"TIME_LIMIT"`
	TotalQuestions int       `db:"TOTAL_QUESTIONS"`
	CreatedAt      time.Time `db:"CREATED_AT"`
}

type MockSessionQuestion struct {
	ID           string `db:"ID"`
	SessionID    string `db:"SESSION_ID"`
	QuestionID   string `db:"QUESTION_ID"`
	ChosenOption int    `db:"CHOSEN_OPTION"`
	IsCorrect    bool   `db:"IS_CORRECT"`
}
