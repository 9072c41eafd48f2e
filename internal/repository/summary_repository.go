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

const summaryColumns = `id "ID", user_id "USER_ID", subject_id "SUBJECT_ID",
		total_attempted "TOTAL_ATTEMPTED", total_correct "TOTAL_CORRECT",
		accuracy "ACCURACY", updated_at "UPDATED_AT"`

// SummaryDatabaseAdapter implements domain.SummaryRepository over user_performance_summaries.
type SummaryDatabaseAdapter struct {
	db *sqlx.DB
}

func NewSummaryDatabaseAdapter(db *sqlx.DB) domain.SummaryRepository {
	return &SummaryDatabaseAdapter{db: db}
}

// IncrementSummary adds the deltas in the database so concurrent writers never
// overwrite each other's counts. Accuracy is written separately via SetAccuracy.
func (a *SummaryDatabaseAdapter) IncrementSummary(ctx context.Context, userID, subjectID string, deltaAttempted, deltaCorrect int) (*domain.PerformanceSummary, error) {
	exec := GetExecutor(ctx, a.db)
	now := time.Now()

	merge := `MERGE INTO user_performance_summaries s
	USING (SELECT :1 AS user_id, :2 AS subject_id FROM DUAL) src
	ON (s.user_id = src.user_id AND s.subject_id = src.subject_id)
	WHEN MATCHED THEN UPDATE SET
		s.total_attempted = s.total_attempted + :3,
		s.total_correct = s.total_correct + :4,
		s.updated_at = :5
	WHEN NOT MATCHED THEN INSERT (id, user_id, subject_id, total_attempted, total_correct, accuracy, updated_at)
		VALUES (:6, src.user_id, src.subject_id, :7, :8, 0, :9)`

	_, err := exec.ExecContext(ctx, merge,
		userID, subjectID,
		deltaAttempted, deltaCorrect, now,
		util.NewULID(), deltaAttempted, deltaCorrect, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert performance summary: %w", err)
	}

	var m models.UserPerformanceSummary
	query := `SELECT ` + summaryColumns + ` FROM user_performance_summaries WHERE user_id = :1 AND subject_id = :2`
	if err := exec.GetContext(ctx, &m, query, userID, subjectID); err != nil {
		return nil, fmt.Errorf("failed to read performance summary after upsert: %w", err)
	}
	return toDomainSummary(&m), nil
}

func (a *SummaryDatabaseAdapter) SetAccuracy(ctx context.Context, summaryID string, accuracy float64) error {
	query := `UPDATE user_performance_summaries SET accuracy = :1, updated_at = :2 WHERE id = :3`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, accuracy, time.Now(), summaryID); err != nil {
		return fmt.Errorf("failed to set accuracy on summary %s: %w", summaryID, err)
	}
	return nil
}

func (a *SummaryDatabaseAdapter) GetSummariesByUser(ctx context.Context, userID string) ([]domain.PerformanceSummary, error) {
	var rows []models.UserPerformanceSummary
	query := `SELECT ` + summaryColumns + ` FROM user_performance_summaries WHERE user_id = :1 ORDER BY subject_id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get performance summaries for user %s: %w", userID, err)
	}
	summaries := make([]domain.PerformanceSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, *toDomainSummary(&rows[i]))
	}
	return summaries, nil
}

func toDomainSummary(m *models.UserPerformanceSummary) *domain.PerformanceSummary {
	return &domain.PerformanceSummary{
		ID:             m.ID,
		UserID:         m.UserID,
		SubjectID:      m.SubjectID,
		TotalAttempted: m.TotalAttempted,
		TotalCorrect:   m.TotalCorrect,
		Accuracy:       m.Accuracy,
		UpdatedAt:      m.UpdatedAt,
	}
}
