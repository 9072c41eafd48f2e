package repository

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptDatabaseAdapter implements domain.AttemptRepository. Attempts are insert-only.
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

func (a *AttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.PracticeAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}
	timeSpent := util.IntPtrToNullInt64(attempt.TimeSpent)

	query := `INSERT INTO practice_attempts (id, session_id, user_id, question_id, chosen_option, is_correct, time_spent, attempted_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		attempt.ID,
		attempt.SessionID,
		attempt.UserID,
		attempt.QuestionID,
		attempt.ChosenOption,
		attempt.IsCorrect,
		timeSpent,
		attempt.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create practice attempt: %w", err)
	}
	return nil
}

func (a *AttemptDatabaseAdapter) CountCorrectAnswers(ctx context.Context, userID string) (int, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM practice_attempts WHERE user_id = :1 AND is_correct = 1) +
		(SELECT COUNT(*) FROM mock_session_questions msq
			JOIN mock_sessions ms ON ms.id = msq.session_id
			WHERE ms.user_id = :2 AND msq.is_correct = 1)
	FROM DUAL`

	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, userID, userID); err != nil {
		return 0, fmt.Errorf("failed to count correct answers for user %s: %w", userID, err)
	}
	return count, nil
}
