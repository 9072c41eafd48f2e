package service

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"

	"go.uber.org/zap"
)

// ProgressService records practice answers and serves the progress read model.
type ProgressService interface {
	RecordAnswer(ctx context.Context, submission domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error)
	GetProgress(ctx context.Context, userID string) (*dto.ProgressResponse, error)
}

// ProgressRepositories groups the stores the progress engine writes to.
type ProgressRepositories struct {
	Questions    domain.QuestionRepository
	Sessions     domain.SessionRepository
	Attempts     domain.AttemptRepository
	History      domain.HistoryRepository
	Summaries    domain.SummaryRepository
	Users        domain.UserRepository
	Achievements domain.AchievementRepository
}

type progressService struct {
	txManager domain.TransactionManager
	repos     ProgressRepositories
	notifier  domain.AchievementNotifier
	loc       *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

func NewProgressService(
	txManager domain.TransactionManager,
	repos ProgressRepositories,
	notifier domain.AchievementNotifier,
	loc *time.Location,
	logger *zap.Logger,
) ProgressService {
	if loc == nil {
		loc = time.UTC
	}
	return &progressService{
		txManager: txManager,
		repos:     repos,
		notifier:  notifier,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *progressService) RecordAnswer(ctx context.Context, submission domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
	if submission.UserID == "" {
		return nil, domain.NewUnauthorizedError("user is required")
	}
	if submission.QuestionID == "" || submission.SessionID == "" {
		return nil, domain.NewInvalidInputError("session_id and question_id are required")
	}

	question, err := s.repos.Questions.GetQuestionByID(ctx, submission.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(submission.QuestionID)
	}

	session, err := s.repos.Sessions.GetPracticeSession(ctx, submission.SessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load practice session", err)
	}
	if session == nil || session.UserID != submission.UserID {
		return nil, domain.NewSessionNotFoundError(submission.SessionID)
	}

	correct := question.IsCorrect(submission.ChosenOption)
	var (
		next    domain.UserProgress
		awarded int
	)

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		// Lock the user row first so concurrent answers by the same user serialize.
		progress, err := s.repos.Users.GetProgressForUpdate(ctx, submission.UserID)
		if err != nil {
			return fmt.Errorf("failed to lock user progress: %w", err)
		}
		if progress == nil {
			return domain.NewUserNotFoundError(submission.UserID)
		}

		now := s.now()
		attempt := &domain.PracticeAttempt{
			SessionID:    session.ID,
			UserID:       submission.UserID,
			QuestionID:   question.ID,
			ChosenOption: submission.ChosenOption,
			IsCorrect:    correct,
			TimeSpent:    submission.TimeSpentSeconds,
			AttemptedAt:  now,
		}
		if err := s.repos.Attempts.CreateAttempt(ctx, attempt); err != nil {
			return err
		}

		if _, err := s.repos.History.UpsertHistory(ctx, submission.UserID, question.ID, correct, now); err != nil {
			return err
		}

		if question.HasSubject() {
			if err := applySummaryDelta(ctx, s.repos.Summaries, submission.UserID, question.SubjectID, 1, boolToInt(correct)); err != nil {
				return err
			}
		}

		next, awarded = domain.ApplyAnswer(*progress, correct, now, s.loc)
		return s.repos.Users.UpdateProgress(ctx, &next)
	})
	if err != nil {
		s.logger.Error("Failed to record answer",
			zap.String("user_id", submission.UserID),
			zap.String("question_id", submission.QuestionID),
			zap.Error(err),
		)
		return nil, toDomainError("Failed to record answer", err)
	}

	notifyAchievements(ctx, s.notifier, s.logger, submission.UserID)

	return &dto.SubmitAnswerResponse{
		IsCorrect:     correct,
		CorrectOption: question.CorrectOption,
		Explanation:   question.Explanation,
		XPAwarded:     awarded,
		XP:            next.XP,
		Level:         next.Level,
		CurrentStreak: next.CurrentStreak,
		LongestStreak: next.LongestStreak,
	}, nil
}

// GetProgress returns a zeroed level 1 dashboard for users who have not practiced yet.
func (s *progressService) GetProgress(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is required")
	}

	progress, err := s.repos.Users.GetProgress(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load progress", err)
	}
	if progress == nil {
		progress = &domain.UserProgress{UserID: userID, Level: domain.LevelForXP(0)}
	}

	summaries, err := s.repos.Summaries.GetSummariesByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load performance summaries", err)
	}
	achievements, err := s.repos.Achievements.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load achievements", err)
	}

	resp := &dto.ProgressResponse{
		UserID:         userID,
		XP:             progress.XP,
		Level:          progress.Level,
		CurrentStreak:  progress.CurrentStreak,
		LongestStreak:  progress.LongestStreak,
		LastActiveDate: progress.LastActiveDate,
		Subjects:       make([]dto.SubjectSummary, 0, len(summaries)),
		Achievements:   make([]dto.AchievementItem, 0, len(achievements)),
	}
	for _, sum := range summaries {
		resp.Subjects = append(resp.Subjects, dto.SubjectSummary{
			SubjectID:      sum.SubjectID,
			TotalAttempted: sum.TotalAttempted,
			TotalCorrect:   sum.TotalCorrect,
			Accuracy:       sum.Accuracy,
		})
	}
	for _, a := range achievements {
		item := dto.AchievementItem{Code: string(a.Code), UnlockedAt: a.UnlockedAt}
		if rule, ok := domain.FindAchievementRule(a.Code); ok {
			item.Title = rule.Title
			item.Description = rule.Description
		}
		resp.Achievements = append(resp.Achievements, item)
	}
	return resp, nil
}
