package repository

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/repository/models"
	"padhobadho/internal/util"

	"github.com/jmoiron/sqlx"
)

// HistoryDatabaseAdapter implements domain.HistoryRepository over user_question_history.
type HistoryDatabaseAdapter struct {
	db *sqlx.DB
}

func NewHistoryDatabaseAdapter(db *sqlx.DB) domain.HistoryRepository {
	return &HistoryDatabaseAdapter{db: db}
}

// UpsertHistory relies on the (user_id, question_id) unique key; MERGE makes the
// find-or-create a single statement.
func (a *HistoryDatabaseAdapter) UpsertHistory(ctx context.Context, userID, questionID string, isCorrect bool, attemptedAt time.Time) (*domain.UserQuestionHistory, error) {
	exec := GetExecutor(ctx, a.db)

	merge := `MERGE INTO user_question_history h
	USING (SELECT :1 AS user_id, :2 AS question_id FROM DUAL) src
	ON (h.user_id = src.user_id AND h.question_id = src.question_id)
	WHEN MATCHED THEN UPDATE SET
		h.occurrence = h.occurrence + 1,
		h.is_correct = :3,
		h.last_attempted_at = :4
	WHEN NOT MATCHED THEN INSERT (id, user_id, question_id, last_attempted_at, is_correct, occurrence)
		VALUES (:5, src.user_id, src.question_id, :6, :7, 1)`

	_, err := exec.ExecContext(ctx, merge,
		userID, questionID,
		isCorrect, attemptedAt,
		util.NewULID(), attemptedAt, isCorrect,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert question history: %w", err)
	}

	var m models.UserQuestionHistory
	query := `SELECT id "ID", user_id "USER_ID", question_id "QUESTION_ID",
		last_attempted_at "LAST_ATTEMPTED_AT", is_correct "IS_CORRECT", occurrence "OCCURRENCE"
	FROM user_question_history WHERE user_id = :1 AND question_id = :2`
	if err := exec.GetContext(ctx, &m, query, userID, questionID); err != nil {
		return nil, fmt.Errorf("failed to read question history after upsert: %w", err)
	}
	return &domain.UserQuestionHistory{
		ID:              m.ID,
		UserID:          m.UserID,
		QuestionID:      m.QuestionID,
		LastAttemptedAt: m.LastAttemptedAt,
		IsCorrect:       m.IsCorrect,
		Occurrence:      m.Occurrence,
	}, nil
}
