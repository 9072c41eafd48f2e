package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"padhobadho/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type achievementFixture struct {
	users        *MockUserRepository
	attempts     *MockAttemptRepository
	sessions     *MockSessionRepository
	summaries    *MockSummaryRepository
	achievements *MockAchievementRepository
	svc          *AchievementService
	now          time.Time
}

func newAchievementFixture() *achievementFixture {
	f := &achievementFixture{
		users:        new(MockUserRepository),
		attempts:     new(MockAttemptRepository),
		sessions:     new(MockSessionRepository),
		summaries:    new(MockSummaryRepository),
		achievements: new(MockAchievementRepository),
		now:          time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewAchievementService(f.users, f.attempts, f.sessions, f.summaries, f.achievements, zap.NewNop())
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestAchievementService_Evaluate(t *testing.T) {
	f := newAchievementFixture()
	f.users.On("GetProgress", mock.Anything, "u1").Return(&domain.UserProgress{UserID: "u1", Level: 5, LongestStreak: 3}, nil)
	f.attempts.On("CountCorrectAnswers", mock.Anything, "u1").Return(12, nil)
	f.sessions.On("CountMockSessions", mock.Anything, "u1").Return(1, nil)
	f.summaries.On("GetSummariesByUser", mock.Anything, "u1").Return([]domain.PerformanceSummary{
		{SubjectID: "phy", TotalAttempted: 20, Accuracy: 95},
	}, nil)
	f.achievements.On("GetUnlockedCodes", mock.Anything, "u1").
		Return([]domain.AchievementCode{domain.AchievementFirstCorrect}, nil)

	for _, code := range []domain.AchievementCode{
		domain.AchievementStreak3,
		domain.AchievementLevel5,
		domain.AchievementFirstMockTest,
	} {
		f.achievements.On("Unlock", mock.Anything, "u1", code, f.now).Return(nil).Once()
	}

	require.NoError(t, f.svc.Evaluate(context.Background(), "u1"))
	f.achievements.AssertExpectations(t)
	f.achievements.AssertNotCalled(t, "Unlock", mock.Anything, "u1", domain.AchievementFirstCorrect, mock.Anything)
	f.achievements.AssertNotCalled(t, "Unlock", mock.Anything, "u1", domain.AchievementSubjectExpert, mock.Anything)
}

func TestAchievementService_NothingNew(t *testing.T) {
	f := newAchievementFixture()
	f.users.On("GetProgress", mock.Anything, "u1").Return(&domain.UserProgress{UserID: "u1", Level: 1}, nil)
	f.attempts.On("CountCorrectAnswers", mock.Anything, "u1").Return(0, nil)
	f.sessions.On("CountMockSessions", mock.Anything, "u1").Return(0, nil)
	f.summaries.On("GetSummariesByUser", mock.Anything, "u1").Return([]domain.PerformanceSummary{}, nil)
	f.achievements.On("GetUnlockedCodes", mock.Anything, "u1").Return([]domain.AchievementCode{}, nil)

	require.NoError(t, f.svc.Evaluate(context.Background(), "u1"))
	f.achievements.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAchievementService_Failures(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newAchievementFixture()
		f.users.On("GetProgress", mock.Anything, "ghost").Return(nil, nil)
		err := f.svc.Evaluate(context.Background(), "ghost")
		assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeAchievementFailure})
		assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeUserNotFound})
	})

	t.Run("unlock error", func(t *testing.T) {
		f := newAchievementFixture()
		f.users.On("GetProgress", mock.Anything, "u1").Return(&domain.UserProgress{UserID: "u1", Level: 1}, nil)
		f.attempts.On("CountCorrectAnswers", mock.Anything, "u1").Return(1, nil)
		f.sessions.On("CountMockSessions", mock.Anything, "u1").Return(0, nil)
		f.summaries.On("GetSummariesByUser", mock.Anything, "u1").Return([]domain.PerformanceSummary{}, nil)
		f.achievements.On("GetUnlockedCodes", mock.Anything, "u1").Return([]domain.AchievementCode{}, nil)
		f.achievements.On("Unlock", mock.Anything, "u1", domain.AchievementFirstCorrect, f.now).Return(errors.New("ORA-00001"))

		err := f.svc.Evaluate(context.Background(), "u1")
		assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeAchievementFailure})
	})
}
