package domain

import (
	"strings"
	"time"
)

// Difficulty is the question difficulty enum stored as EASY, MEDIUM or HARD.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty accepts any casing; an empty value defaults to MEDIUM.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return DifficultyEasy, true
	case "", "MEDIUM":
		return DifficultyMedium, true
	case "HARD":
		return DifficultyHard, true
	default:
		return "", false
	}
}

// Subject is an exam subject such as Physics or Quantitative Aptitude.
type Subject struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Question is a multiple-choice question. CorrectOption is a zero-based index into Options.
type Question struct {
	ID            string
	SubjectID     string
	Topic         string
	Content       string
	Options       []string
	CorrectOption int
	Difficulty    Difficulty
	Explanation   string
	SourceYear    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasSubject reports whether the question belongs to a subject.
func (q *Question) HasSubject() bool {
	return q.SubjectID != ""
}

// IsCorrect compares a chosen option against the stored answer.
func (q *Question) IsCorrect(chosenOption int) bool {
	return chosenOption == q.CorrectOption
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return NewValidationError("content is required")
	}
	if len(q.Options) < 2 {
		return NewValidationError("at least two options are required")
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return NewValidationError("options must not be empty")
		}
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return NewValidationError("correct option is out of range")
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return NewValidationError("difficulty must be EASY, MEDIUM or HARD")
	}
	return nil
}

// NewValidationError returns a VALIDATION_ERROR domain error.
func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}
