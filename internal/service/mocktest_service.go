package service

import (
	"context"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
)

// MockTestService draws mock test papers.
type MockTestService interface {
	StartMockTest(ctx context.Context, userID, subjectID string) (*dto.StartMockTestResponse, error)
}

type mockTestService struct {
	questionRepo  domain.QuestionRepository
	subjectRepo   domain.SubjectRepository
	questionCount int
}

func NewMockTestService(questionRepo domain.QuestionRepository, subjectRepo domain.SubjectRepository, questionCount int) MockTestService {
	if questionCount <= 0 {
		questionCount = 30
	}
	return &mockTestService{
		questionRepo:  questionRepo,
		subjectRepo:   subjectRepo,
		questionCount: questionCount,
	}
}

// StartMockTest does not apply mastery exclusion and does not create a session;
// the session is recorded when the sheet is submitted.
func (s *mockTestService) StartMockTest(ctx context.Context, userID, subjectID string) (*dto.StartMockTestResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user is required")
	}
	if subjectID == "" {
		return nil, domain.NewInvalidInputError("subject_id is required")
	}

	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load subject", err)
	}
	if subject == nil {
		return nil, domain.NewNotFoundError("Subject not found with ID: " + subjectID)
	}

	ids, err := s.questionRepo.GetRandomQuestionIDs(ctx, subjectID, s.questionCount)
	if err != nil {
		return nil, domain.NewInternalError("Failed to draw mock test questions", err)
	}
	if len(ids) == 0 {
		return nil, domain.NewNoQuestionsAvailableError(subjectID)
	}

	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, ids)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load mock test questions", err)
	}
	views := orderedViews(ids, questions)
	if len(views) == 0 {
		return nil, domain.NewNoQuestionsAvailableError(subjectID)
	}

	return &dto.StartMockTestResponse{
		SubjectID:        subjectID,
		TimeLimitSeconds: domain.MockTestDurationSeconds,
		Questions:        views,
	}, nil
}
