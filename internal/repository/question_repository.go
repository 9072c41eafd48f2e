package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/repository/models"
	"padhobadho/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id "ID",
		subject_id "SUBJECT_ID",
		topic "TOPIC",
		content "CONTENT",
		answer_options "ANSWER_OPTIONS",
		correct_option "CORRECT_OPTION",
		difficulty "DIFFICULTY",
		explanation "EXPLANATION",
		source_year "SOURCE_YEAR",
		created_at "CREATED_AT",
		updated_at "UPDATED_AT"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = :1`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

func (a *QuestionDatabaseAdapter) GetQuestionsByIDs(ctx context.Context, ids []string) ([]*domain.Question, error) {
	questions := make([]*domain.Question, 0, len(ids))
	for _, chunk := range chunkStrings(ids, oracleInListLimit) {
		var rows []models.Question
		query := `SELECT ` + questionColumns + ` FROM questions WHERE id IN (` + bindList(1, len(chunk)) + `)`

		args := make([]interface{}, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("failed to get questions by IDs: %w", err)
		}
		for i := range rows {
			questions = append(questions, toDomainQuestion(&rows[i]))
		}
	}
	return questions, nil
}

// GetUnmasteredQuestionIDs excludes every question with at least one correct practice
// attempt or correct mock result for the user. The latest-outcome flag on
// user_question_history is deliberately not consulted.
func (a *QuestionDatabaseAdapter) GetUnmasteredQuestionIDs(ctx context.Context, userID, subjectID string, limit int) ([]string, error) {
	query := `SELECT q.id FROM questions q
	WHERE q.id NOT IN (
		SELECT pa.question_id FROM practice_attempts pa
		WHERE pa.user_id = :1 AND pa.is_correct = 1
		UNION
		SELECT msq.question_id FROM mock_session_questions msq
		JOIN mock_sessions ms ON ms.id = msq.session_id
		WHERE ms.user_id = :2 AND msq.is_correct = 1
	)`
	args := []interface{}{userID, userID}
	if subjectID != "" {
		query += ` AND q.subject_id = :3`
		args = append(args, subjectID)
	}
	query += fmt.Sprintf(` ORDER BY DBMS_RANDOM.VALUE FETCH FIRST :%d ROWS ONLY`, len(args)+1)
	args = append(args, limit)

	var ids []string
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get unmastered question IDs for user %s: %w", userID, err)
	}
	return ids, nil
}

func (a *QuestionDatabaseAdapter) GetRandomQuestionIDs(ctx context.Context, subjectID string, limit int) ([]string, error) {
	query := `SELECT id FROM questions
	WHERE subject_id = :1
	ORDER BY DBMS_RANDOM.VALUE
	FETCH FIRST :2 ROWS ONLY`

	var ids []string
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ids, query, subjectID, limit); err != nil {
		return nil, fmt.Errorf("failed to get random question IDs for subject %s: %w", subjectID, err)
	}
	return ids, nil
}

func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now

	m := toModelQuestion(question)
	options, err := m.Options.Value()
	if err != nil {
		return fmt.Errorf("failed to encode question options: %w", err)
	}

	query := `INSERT INTO questions (
		id, subject_id, topic, content, answer_options, correct_option,
		difficulty, explanation, source_year, created_at, updated_at
	) VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`

	_, err = GetExecutor(ctx, a.db).ExecContext(ctx, query,
		m.ID,
		m.SubjectID,
		m.Topic,
		m.Content,
		options,
		m.CorrectOption,
		m.Difficulty,
		m.Explanation,
		m.SourceYear,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// ExistsByContent matches content case-insensitively, the same rule the
// importer applies to rows within one file.
func (a *QuestionDatabaseAdapter) ExistsByContent(ctx context.Context, subjectID, content string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM questions WHERE subject_id = :1 AND UPPER(content) = UPPER(:2)`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, subjectID, content); err != nil {
		return false, fmt.Errorf("failed to check duplicate question: %w", err)
	}
	return count > 0, nil
}

// DeleteQuestion removes dependents before the question itself. Run it inside a
// transaction so the cascade is all-or-nothing.
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) (bool, error) {
	exec := GetExecutor(ctx, a.db)

	dependents := []struct {
		table string
		query string
	}{
		{"user_question_history", `DELETE FROM user_question_history WHERE question_id = :1`},
		{"practice_attempts", `DELETE FROM practice_attempts WHERE question_id = :1`},
		{"mock_session_questions", `DELETE FROM mock_session_questions WHERE question_id = :1`},
	}
	for _, d := range dependents {
		if _, err := exec.ExecContext(ctx, d.query, id); err != nil {
			return false, fmt.Errorf("failed to delete %s rows for question %s: %w", d.table, id, err)
		}
	}

	result, err := exec.ExecContext(ctx, `DELETE FROM questions WHERE id = :1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	options := []string(m.Options)
	if options == nil {
		options = []string{}
	}
	return &domain.Question{
		ID:            m.ID,
		SubjectID:     m.SubjectID.String,
		Topic:         m.Topic.String,
		Content:       m.Content,
		Options:       options,
		CorrectOption: m.CorrectOption,
		Difficulty:    domain.Difficulty(m.Difficulty),
		Explanation:   m.Explanation.String,
		SourceYear:    int(m.SourceYear.Int64),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toModelQuestion(d *domain.Question) *models.Question {
	if d == nil {
		return nil
	}
	return &models.Question{
		ID:            d.ID,
		SubjectID:     util.StringToNullString(d.SubjectID),
		Topic:         util.StringToNullString(d.Topic),
		Content:       d.Content,
		Options:       models.StringSlice(d.Options),
		CorrectOption: d.CorrectOption,
		Difficulty:    string(d.Difficulty),
		Explanation:   util.StringToNullString(d.Explanation),
		SourceYear:    util.IntToNullInt64(d.SourceYear),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
