package models

import (
	"database/sql"
	"time"
)

// Subject maps the SUBJECTS table.
type Subject struct {
	ID        string    `db:"ID"`
	Name      string    `db:"NAME"`
	CreatedAt time.Time `db:"CREATED_AT"`
}

// Question maps the QUESTIONS table. OPTIONS holds a JSON array.
type Question struct {
	ID            string         `db:"ID"`
	SubjectID     sql.NullString `db:"SUBJECT_ID"`
	Topic         sql.NullString `db:"TOPIC"`
	Content       string         `db:"CONTENT"`
	Options       StringSlice    `db:"ANSWER_OPTIONS"`
	CorrectOption int            `db:"CORRECT_OPTION"`
	Difficulty    string         `db:"DIFFICULTY"`
	Explanation   sql.NullString `db:"EXPLANATION"`
	SourceYear    sql.NullInt64  `db:"SOURCE_YEAR"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
	UpdatedAt     time.Time      `db:"UPDATED_AT"`
}
