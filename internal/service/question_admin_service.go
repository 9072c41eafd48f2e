package service

import (
	"context"

	"padhobadho/internal/cache"
	"padhobadho/internal/domain"
	"padhobadho/internal/logger"

	"go.uber.org/zap"
)

// QuestionAdminService holds the admin-only question operations.
type QuestionAdminService interface {
	DeleteQuestion(ctx context.Context, questionID string) error
}

type questionAdminService struct {
	txManager    domain.TransactionManager
	questionRepo domain.QuestionRepository
	cache        domain.Cache
}

// NewQuestionAdminService accepts a nil cache.
func NewQuestionAdminService(txManager domain.TransactionManager, questionRepo domain.QuestionRepository, c domain.Cache) QuestionAdminService {
	return &questionAdminService{txManager: txManager, questionRepo: questionRepo, cache: c}
}

// DeleteQuestion removes the question with its history, attempts and mock results,
// then drops the cached copy.
func (s *questionAdminService) DeleteQuestion(ctx context.Context, questionID string) error {
	if questionID == "" {
		return domain.NewInvalidInputError("question id is required")
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		deleted, err := s.questionRepo.DeleteQuestion(ctx, questionID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewQuestionNotFoundError(questionID)
		}
		return nil
	})
	if err != nil {
		return toDomainError("Failed to delete question", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.QuestionKey(questionID)); err != nil {
			logger.Get().Warn("Failed to invalidate question cache",
				zap.String("question_id", questionID),
				zap.Error(err),
			)
		}
	}
	logger.Get().Info("Question deleted", zap.String("question_id", questionID))
	return nil
}
