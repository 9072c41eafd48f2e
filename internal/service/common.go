package service

import (
	"context"
	"errors"
	"fmt"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"

	"go.uber.org/zap"
)

func toQuestionView(q *domain.Question) dto.QuestionView {
	return dto.QuestionView{
		ID:         q.ID,
		SubjectID:  q.SubjectID,
		Topic:      q.Topic,
		Content:    q.Content,
		Options:    q.Options,
		Difficulty: string(q.Difficulty),
		SourceYear: q.SourceYear,
	}
}

// orderedViews returns the questions in the order of ids, dropping ids that no longer exist.
func orderedViews(ids []string, questions []*domain.Question) []dto.QuestionView {
	byID := make(map[string]*domain.Question, len(questions))
	for _, q := range questions {
		if q != nil {
			byID[q.ID] = q
		}
	}
	views := make([]dto.QuestionView, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			views = append(views, toQuestionView(q))
		}
	}
	return views
}

// applySummaryDelta adds the deltas to the (user, subject) summary and rewrites its
// accuracy from the stored totals. Must run inside the caller's transaction.
func applySummaryDelta(ctx context.Context, repo domain.SummaryRepository, userID, subjectID string, attempted, correct int) error {
	summary, err := repo.IncrementSummary(ctx, userID, subjectID, attempted, correct)
	if err != nil {
		return fmt.Errorf("failed to update performance summary: %w", err)
	}
	if summary == nil || summary.TotalAttempted == 0 {
		return nil
	}
	accuracy, err := domain.CalculateAccuracy(summary.TotalCorrect, summary.TotalAttempted)
	if err != nil {
		return err
	}
	if err := repo.SetAccuracy(ctx, summary.ID, accuracy); err != nil {
		return fmt.Errorf("failed to update accuracy: %w", err)
	}
	return nil
}

// notifyAchievements runs after commit. Failures never reach the caller.
func notifyAchievements(ctx context.Context, notifier domain.AchievementNotifier, log *zap.Logger, userID string) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, userID); err != nil {
		log.Warn("Failed to enqueue achievement evaluation",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// toDomainError passes domain errors through and wraps anything else as INTERNAL_ERROR.
func toDomainError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}
