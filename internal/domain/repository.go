package domain

import (
	"context"
	"time"
)

// TransactionManager runs fn inside a storage transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repositories return (nil, nil) when a single-row lookup finds nothing.

type SubjectRepository interface {
	GetSubjectByID(ctx context.Context, id string) (*Subject, error)
	GetSubjectByName(ctx context.Context, name string) (*Subject, error)
	CreateSubject(ctx context.Context, subject *Subject) error
}

type QuestionRepository interface {
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	// GetQuestionsByIDs returns the questions that still exist; missing ids are dropped.
	GetQuestionsByIDs(ctx context.Context, ids []string) ([]*Question, error)
	// GetUnmasteredQuestionIDs returns up to limit ids of questions the user has never answered
	// correctly, in practice or in a mock test. An empty subjectID spans every subject.
	GetUnmasteredQuestionIDs(ctx context.Context, userID, subjectID string, limit int) ([]string, error)
	GetRandomQuestionIDs(ctx context.Context, subjectID string, limit int) ([]string, error)
	CreateQuestion(ctx context.Context, question *Question) error
	ExistsByContent(ctx context.Context, subjectID, content string) (bool, error)
	// DeleteQuestion removes the question and its dependent history, attempt and
	// mock result rows. It reports false when the question did not exist.
	DeleteQuestion(ctx context.Context, id string) (bool, error)
}

type SessionRepository interface {
	CreatePracticeSession(ctx context.Context, session *PracticeSession) error
	GetPracticeSession(ctx context.Context, id string) (*PracticeSession, error)
	CreateMockSession(ctx context.Context, session *MockSession) error
	UpdateMockSessionScore(ctx context.Context, sessionID string, score int) error
	CreateMockSessionQuestions(ctx context.Context, results []MockSessionQuestion) error
	CountMockSessions(ctx context.Context, userID string) (int, error)
}

type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *PracticeAttempt) error
	// CountCorrectAnswers counts correct practice attempts and correct mock results.
	CountCorrectAnswers(ctx context.Context, userID string) (int, error)
}

type HistoryRepository interface {
	// UpsertHistory creates the row with occurrence 1 or increments it and overwrites
	// the latest outcome, then returns the stored row.
	UpsertHistory(ctx context.Context, userID, questionID string, isCorrect bool, attemptedAt time.Time) (*UserQuestionHistory, error)
}

type SummaryRepository interface {
	// IncrementSummary adds the deltas to the (user, subject) row, creating it when absent,
	// and returns the updated totals. Accuracy is left untouched.
	IncrementSummary(ctx context.Context, userID, subjectID string, deltaAttempted, deltaCorrect int) (*PerformanceSummary, error)
	SetAccuracy(ctx context.Context, summaryID string, accuracy float64) error
	GetSummariesByUser(ctx context.Context, userID string) ([]PerformanceSummary, error)
}

type UserRepository interface {
	// EnsureUser creates the user row with zeroed gamification fields when it is missing.
	EnsureUser(ctx context.Context, userID string) error
	GetProgress(ctx context.Context, userID string) (*UserProgress, error)
	// GetProgressForUpdate locks the user row for the surrounding transaction.
	GetProgressForUpdate(ctx context.Context, userID string) (*UserProgress, error)
	UpdateProgress(ctx context.Context, progress *UserProgress) error
}

type AchievementRepository interface {
	GetUnlockedCodes(ctx context.Context, userID string) ([]AchievementCode, error)
	GetUserAchievements(ctx context.Context, userID string) ([]UserAchievement, error)
	// Unlock is a no-op when the achievement is already unlocked.
	Unlock(ctx context.Context, userID string, code AchievementCode, unlockedAt time.Time) error
}
