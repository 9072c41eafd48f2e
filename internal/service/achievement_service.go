package service

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"

	"go.uber.org/zap"
)

// AchievementService evaluates achievement rules against committed counters.
// It implements domain.AchievementEvaluator.
type AchievementService struct {
	userRepo        domain.UserRepository
	attemptRepo     domain.AttemptRepository
	sessionRepo     domain.SessionRepository
	summaryRepo     domain.SummaryRepository
	achievementRepo domain.AchievementRepository
	logger          *zap.Logger
	now             func() time.Time
}

func NewAchievementService(
	userRepo domain.UserRepository,
	attemptRepo domain.AttemptRepository,
	sessionRepo domain.SessionRepository,
	summaryRepo domain.SummaryRepository,
	achievementRepo domain.AchievementRepository,
	logger *zap.Logger,
) *AchievementService {
	return &AchievementService{
		userRepo:        userRepo,
		attemptRepo:     attemptRepo,
		sessionRepo:     sessionRepo,
		summaryRepo:     summaryRepo,
		achievementRepo: achievementRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *AchievementService) Evaluate(ctx context.Context, userID string) error {
	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return domain.NewAchievementEvaluationError(userID, err)
	}

	unlocked, err := s.achievementRepo.GetUnlockedCodes(ctx, userID)
	if err != nil {
		return domain.NewAchievementEvaluationError(userID, err)
	}

	earned := domain.NewlyEarned(*stats, unlocked)
	if len(earned) == 0 {
		return nil
	}

	now := s.now()
	for _, code := range earned {
		if err := s.achievementRepo.Unlock(ctx, userID, code, now); err != nil {
			return domain.NewAchievementEvaluationError(userID, err)
		}
		s.logger.Info("Achievement unlocked",
			zap.String("user_id", userID),
			zap.String("code", string(code)),
		)
	}
	return nil
}

func (s *AchievementService) loadStats(ctx context.Context, userID string) (*domain.AchievementStats, error) {
	progress, err := s.userRepo.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	totalCorrect, err := s.attemptRepo.CountCorrectAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	mockSessions, err := s.sessionRepo.CountMockSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summaryRepo.GetSummariesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}

	return &domain.AchievementStats{
		TotalCorrect:          totalCorrect,
		LongestStreak:         progress.LongestStreak,
		Level:                 progress.Level,
		MockSessionsCompleted: mockSessions,
		Summaries:             summaries,
	}, nil
}
