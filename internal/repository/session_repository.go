package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/repository/models"
	"padhobadho/internal/util"

	"github.com/jmoiron/sqlx"
)

// mockResultBatchSize keeps a single INSERT ALL well under Oracle's bind variable limit.
const mockResultBatchSize = 200

// SessionDatabaseAdapter implements domain.SessionRepository for practice and mock sessions.
type SessionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewSessionDatabaseAdapter(db *sqlx.DB) domain.SessionRepository {
	return &SessionDatabaseAdapter{db: db}
}

func (a *SessionDatabaseAdapter) CreatePracticeSession(ctx context.Context, session *domain.PracticeSession) error {
	if session.ID == "" {
		session.ID = util.NewULID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	query := `INSERT INTO practice_sessions (id, user_id, subject_id, created_at) VALUES (:1, :2, :3, :4)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		session.ID,
		session.UserID,
		util.StringToNullString(session.SubjectID),
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create practice session: %w", err)
	}
	return nil
}

func (a *SessionDatabaseAdapter) GetPracticeSession(ctx context.Context, id string) (*domain.PracticeSession, error) {
	var m models.PracticeSession
	query := `SELECT id "ID", user_id "USER_ID", subject_id "SUBJECT_ID", created_at "CREATED_AT"
	FROM practice_sessions WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get practice session %s: %w", id, err)
	}
	return &domain.PracticeSession{
		ID:        m.ID,
		UserID:    m.UserID,
		SubjectID: m.SubjectID.String,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (a *SessionDatabaseAdapter) CreateMockSession(ctx context.Context, session *domain.MockSession) error {
	if session.ID == "" {
		session.ID = util.NewULID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.TimeLimit == 0 {
		session.TimeLimit = domain.MockTestDurationSeconds
	}

	query := `INSERT INTO mock_sessions (id, user_id, subject_id, score, time_spent, time_limit, total_questions, created_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.SubjectID,
		session.Score,
		session.TimeSpent,
		session.TimeLimit,
		session.TotalQuestions,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mock session: %w", err)
	}
	return nil
}

// UpdateMockSessionScore records the final score and marks the session graded.
func (a *SessionDatabaseAdapter) UpdateMockSessionScore(ctx context.Context, sessionID string, score int) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`UPDATE mock_sessions SET score = :1, graded_at = :2 WHERE id = :3`, score, time.Now(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to update mock session score: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewSessionNotFoundError(sessionID)
	}
	return nil
}

// CreateMockSessionQuestions writes all results with INSERT ALL, assigning IDs to rows that lack one.
func (a *SessionDatabaseAdapter) CreateMockSessionQuestions(ctx context.Context, results []domain.MockSessionQuestion) error {
	for start := 0; start < len(results); start += mockResultBatchSize {
		end := min(start+mockResultBatchSize, len(results))
		batch := results[start:end]

		var sb strings.Builder
		args := make([]interface{}, 0, len(batch)*5)
		sb.WriteString("INSERT ALL")
		for i := range batch {
			if batch[i].ID == "" {
				batch[i].ID = util.NewULID()
			}
			sb.WriteString("\n\tINTO mock_session_questions (id, session_id, question_id, chosen_option, is_correct) VALUES (")
			sb.WriteString(bindList(len(args)+1, 5))
			sb.WriteString(")")
			args = append(args, batch[i].ID, batch[i].SessionID, batch[i].QuestionID, batch[i].ChosenOption, batch[i].IsCorrect)
		}
		sb.WriteString("\nSELECT 1 FROM DUAL")

		if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("failed to create mock session questions: %w", err)
		}
	}
	return nil
}

// CountMockSessions counts graded sessions only.
func (a *SessionDatabaseAdapter) CountMockSessions(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM mock_sessions WHERE user_id = :1 AND graded_at IS NOT NULL`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count mock sessions for user %s: %w", userID, err)
	}
	return count, nil
}
