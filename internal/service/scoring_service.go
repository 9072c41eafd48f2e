package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"

	"go.uber.org/zap"
)

// ScoringService grades mock tests.
type ScoringService interface {
	GradeAndRecord(ctx context.Context, userID string, submission domain.MockSubmission) (*dto.MockTestResultResponse, error)
}

type scoringService struct {
	txManager    domain.TransactionManager
	userRepo     domain.UserRepository
	subjectRepo  domain.SubjectRepository
	sessionRepo  domain.SessionRepository
	questionRepo domain.QuestionRepository
	summaryRepo  domain.SummaryRepository
	notifier     domain.AchievementNotifier
	logger       *zap.Logger
	now          func() time.Time
}

func NewScoringService(
	txManager domain.TransactionManager,
	userRepo domain.UserRepository,
	subjectRepo domain.SubjectRepository,
	sessionRepo domain.SessionRepository,
	questionRepo domain.QuestionRepository,
	summaryRepo domain.SummaryRepository,
	notifier domain.AchievementNotifier,
	logger *zap.Logger,
) ScoringService {
	return &scoringService{
		txManager:    txManager,
		userRepo:     userRepo,
		subjectRepo:  subjectRepo,
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		summaryRepo:  summaryRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// GradeAndRecord grades one sitting with +5/-1 marking and records the results.
// The session row is committed before grading starts; if grading fails the session
// stays with score 0.
func (s *scoringService) GradeAndRecord(ctx context.Context, userID string, submission domain.MockSubmission) (*dto.MockTestResultResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is required")
	}
	if submission.SubjectID == "" {
		return nil, domain.NewInvalidInputError("subject_id is required")
	}

	subject, err := s.subjectRepo.GetSubjectByID(ctx, submission.SubjectID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load subject", err)
	}
	if subject == nil {
		return nil, domain.NewNotFoundError("Subject not found with ID: " + submission.SubjectID)
	}

	if err := s.userRepo.EnsureUser(ctx, userID); err != nil {
		return nil, domain.NewInternalError("Failed to prepare user", err)
	}

	session := &domain.MockSession{
		UserID:         userID,
		SubjectID:      submission.SubjectID,
		Score:          0,
		TimeSpent:      domain.ElapsedSeconds(submission.SecondsRemaining),
		TimeLimit:      domain.MockTestDurationSeconds,
		TotalQuestions: submission.TotalQuestions,
		CreatedAt:      s.now(),
	}
	if err := s.sessionRepo.CreateMockSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to create mock session", err)
	}

	ids := make([]string, 0, len(submission.Answers))
	for id := range submission.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sheet domain.Marksheet
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var questions []*domain.Question
		if len(ids) > 0 {
			var err error
			questions, err = s.questionRepo.GetQuestionsByIDs(ctx, ids)
			if err != nil {
				return fmt.Errorf("failed to load answered questions: %w", err)
			}
		}

		sheet = domain.GradeAnswers(session.ID, questions, submission.Answers)

		if len(sheet.Results) > 0 {
			if err := s.sessionRepo.CreateMockSessionQuestions(ctx, sheet.Results); err != nil {
				return err
			}
		}
		if err := s.sessionRepo.UpdateMockSessionScore(ctx, session.ID, sheet.Score); err != nil {
			return err
		}
		if sheet.Attempted() > 0 {
			return applySummaryDelta(ctx, s.summaryRepo, userID, submission.SubjectID, sheet.Attempted(), sheet.Correct)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to grade mock test",
			zap.String("user_id", userID),
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		return nil, toDomainError("Failed to grade mock test", err)
	}

	if skipped := len(ids) - sheet.Attempted(); skipped > 0 {
		s.logger.Info("Skipped answers for missing questions",
			zap.String("session_id", session.ID),
			zap.Int("skipped", skipped),
		)
	}

	notifyAchievements(ctx, s.notifier, s.logger, userID)

	return &dto.MockTestResultResponse{
		SessionID:        session.ID,
		Score:            sheet.Score,
		Correct:          sheet.Correct,
		Incorrect:        sheet.Incorrect,
		Unattempted:      sheet.Unattempted(submission.TotalQuestions),
		TimeSpentSeconds: session.TimeSpent,
	}, nil
}
