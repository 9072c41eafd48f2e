package service

import (
	"context"
	"time"

	"padhobadho/internal/config"
	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
	"padhobadho/internal/logger"
	"padhobadho/internal/util"

	"go.uber.org/zap"
)

// PracticeService opens practice sessions over the questions a user has not mastered yet.
type PracticeService interface {
	StartPractice(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error)
}

type practiceService struct {
	questionRepo    domain.QuestionRepository
	subjectRepo     domain.SubjectRepository
	sessionRepo     domain.SessionRepository
	userRepo        domain.UserRepository
	sessionSize     int
	candidateWindow int
	sample          func(ids []string, n int) []string
	now             func() time.Time
}

func NewPracticeService(
	questionRepo domain.QuestionRepository,
	subjectRepo domain.SubjectRepository,
	sessionRepo domain.SessionRepository,
	userRepo domain.UserRepository,
	cfg config.PracticeConfig,
) PracticeService {
	size := cfg.SessionSize
	if size <= 0 {
		size = 15
	}
	window := cfg.CandidateWindow
	if window <= 0 {
		window = 1000
	}
	window = max(window, size)
	return &practiceService{
		questionRepo:    questionRepo,
		subjectRepo:     subjectRepo,
		sessionRepo:     sessionRepo,
		userRepo:        userRepo,
		sessionSize:     size,
		candidateWindow: window,
		sample:          util.SampleStrings,
		now:             time.Now,
	}
}

func (s *practiceService) StartPractice(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is required")
	}
	if subjectID != "" {
		subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to load subject", err)
		}
		if subject == nil {
			return nil, domain.NewNotFoundError("Subject not found with ID: " + subjectID)
		}
	}

	if err := s.userRepo.EnsureUser(ctx, userID); err != nil {
		return nil, domain.NewInternalError("Failed to prepare user", err)
	}

	candidates, err := s.questionRepo.GetUnmasteredQuestionIDs(ctx, userID, subjectID, s.candidateWindow)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load practice candidates", err)
	}
	if len(candidates) == 0 {
		return nil, domain.NewNoQuestionsAvailableError(subjectID)
	}

	picked := s.sample(candidates, s.sessionSize)
	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, picked)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load practice questions", err)
	}
	views := orderedViews(picked, questions)
	if len(views) == 0 {
		return nil, domain.NewNoQuestionsAvailableError(subjectID)
	}

	session := &domain.PracticeSession{UserID: userID, SubjectID: subjectID, CreatedAt: s.now()}
	if err := s.sessionRepo.CreatePracticeSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to create practice session", err)
	}

	logger.Get().Debug("Practice session started",
		zap.String("session_id", session.ID),
		zap.String("user_id", userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("questions", len(views)),
	)

	return &dto.StartPracticeResponse{
		SessionID: session.ID,
		SubjectID: subjectID,
		Questions: views,
	}, nil
}
