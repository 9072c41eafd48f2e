package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"padhobadho/internal/config"
	"padhobadho/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func candidateIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("q%02d", i))
	}
	return ids
}

var practiceNow = time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

func newPracticeFixture() (*practiceService, *MockQuestionRepository, *MockSubjectRepository, *MockSessionRepository, *MockUserRepository) {
	questions := new(MockQuestionRepository)
	subjects := new(MockSubjectRepository)
	sessions := new(MockSessionRepository)
	users := new(MockUserRepository)
	svc := NewPracticeService(questions, subjects, sessions, users, config.PracticeConfig{SessionSize: 15, CandidateWindow: 1000}).(*practiceService)
	svc.now = func() time.Time { return practiceNow }
	// Deterministic sampling: take the last n ids in reverse.
	svc.sample = func(ids []string, n int) []string {
		out := []string{}
		for i := len(ids) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, ids[i])
		}
		return out
	}
	return svc, questions, subjects, sessions, users
}

func TestStartPractice(t *testing.T) {
	svc, questions, subjects, sessions, users := newPracticeFixture()
	all := makeQuestions(20, "phy")

	subjects.On("GetSubjectByID", mock.Anything, "phy").Return(&domain.Subject{ID: "phy", Name: "Physics"}, nil)
	users.On("EnsureUser", mock.Anything, "u1").Return(nil)
	questions.On("GetUnmasteredQuestionIDs", mock.Anything, "u1", "phy", 1000).Return(candidateIDs(20), nil)
	questions.On("GetQuestionsByIDs", mock.Anything, mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 15 && ids[0] == "q19"
	})).Return(all[5:], nil)
	sessions.On("CreatePracticeSession", mock.Anything, mock.AnythingOfType("*domain.PracticeSession")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.PracticeSession)
			s.ID = "ps1"
		}).Return(nil)

	res, err := svc.StartPractice(context.Background(), "u1", "phy")
	require.NoError(t, err)
	assert.Equal(t, "ps1", res.SessionID)
	require.Len(t, res.Questions, 15)
	assert.Equal(t, "q19", res.Questions[0].ID, "questions follow the sampled order")
	assert.Equal(t, "q05", res.Questions[14].ID)

	created := sessions.Calls[0].Arguments.Get(1).(*domain.PracticeSession)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "phy", created.SubjectID)
	assert.Equal(t, practiceNow, created.CreatedAt, "session stamped from the service clock")
	users.AssertExpectations(t)
}

func TestStartPractice_AllMastered(t *testing.T) {
	svc, questions, subjects, sessions, users := newPracticeFixture()
	subjects.On("GetSubjectByID", mock.Anything, "phy").Return(&domain.Subject{ID: "phy"}, nil)
	users.On("EnsureUser", mock.Anything, "u1").Return(nil)
	questions.On("GetUnmasteredQuestionIDs", mock.Anything, "u1", "phy", 1000).Return([]string{}, nil)

	res, err := svc.StartPractice(context.Background(), "u1", "phy")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNoQuestionsAvailable)
	sessions.AssertNotCalled(t, "CreatePracticeSession", mock.Anything, mock.Anything)
}

func TestStartPractice_FewerCandidatesThanSessionSize(t *testing.T) {
	svc, questions, _, sessions, users := newPracticeFixture()
	all := makeQuestions(3, "")

	users.On("EnsureUser", mock.Anything, "u1").Return(nil)
	questions.On("GetUnmasteredQuestionIDs", mock.Anything, "u1", "", 1000).Return(candidateIDs(3), nil)
	questions.On("GetQuestionsByIDs", mock.Anything, []string{"q02", "q01", "q00"}).Return(all, nil)
	sessions.On("CreatePracticeSession", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.StartPractice(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Len(t, res.Questions, 3)
}

func TestStartPractice_UnknownSubject(t *testing.T) {
	svc, questions, subjects, _, _ := newPracticeFixture()
	subjects.On("GetSubjectByID", mock.Anything, "nope").Return(nil, nil)

	_, err := svc.StartPractice(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeNotFound})
	questions.AssertNotCalled(t, "GetUnmasteredQuestionIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewPracticeService_Defaults(t *testing.T) {
	svc := NewPracticeService(nil, nil, nil, nil, config.PracticeConfig{}).(*practiceService)
	assert.Equal(t, 15, svc.sessionSize)
	assert.Equal(t, 1000, svc.candidateWindow)
}

func TestStartMockTest(t *testing.T) {
	questions := new(MockQuestionRepository)
	subjects := new(MockSubjectRepository)
	svc := NewMockTestService(questions, subjects, 30)
	qs := makeQuestions(30, "phy")

	subjects.On("GetSubjectByID", mock.Anything, "phy").Return(&domain.Subject{ID: "phy"}, nil)
	questions.On("GetRandomQuestionIDs", mock.Anything, "phy", 30).Return(candidateIDs(30), nil)
	questions.On("GetQuestionsByIDs", mock.Anything, candidateIDs(30)).Return(qs, nil)

	res, err := svc.StartMockTest(context.Background(), "u1", "phy")
	require.NoError(t, err)
	assert.Equal(t, domain.MockTestDurationSeconds, res.TimeLimitSeconds)
	assert.Len(t, res.Questions, 30)
	questions.AssertNotCalled(t, "GetUnmasteredQuestionIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStartMockTest_EmptySubject(t *testing.T) {
	questions := new(MockQuestionRepository)
	subjects := new(MockSubjectRepository)
	svc := NewMockTestService(questions, subjects, 30)

	subjects.On("GetSubjectByID", mock.Anything, "bio").Return(&domain.Subject{ID: "bio"}, nil)
	questions.On("GetRandomQuestionIDs", mock.Anything, "bio", 30).Return([]string{}, nil)

	_, err := svc.StartMockTest(context.Background(), "u1", "bio")
	assert.ErrorIs(t, err, domain.ErrNoQuestionsAvailable)

	_, err = svc.StartMockTest(context.Background(), "u1", "")
	assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeInvalidInput})
}
