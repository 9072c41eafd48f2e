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

// SubjectDatabaseAdapter implements domain.SubjectRepository using sqlx.
type SubjectDatabaseAdapter struct {
	db *sqlx.DB
}

func NewSubjectDatabaseAdapter(db *sqlx.DB) domain.SubjectRepository {
	return &SubjectDatabaseAdapter{db: db}
}

func (a *SubjectDatabaseAdapter) GetSubjectByID(ctx context.Context, id string) (*domain.Subject, error) {
	var m models.Subject
	query := `SELECT id "ID", name "NAME", created_at "CREATED_AT" FROM subjects WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject by ID %s: %w", id, err)
	}
	return toDomainSubject(&m), nil
}

// GetSubjectByName matches case-insensitively.
func (a *SubjectDatabaseAdapter) GetSubjectByName(ctx context.Context, name string) (*domain.Subject, error) {
	var m models.Subject
	query := `SELECT id "ID", name "NAME", created_at "CREATED_AT" FROM subjects WHERE UPPER(name) = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, strings.ToUpper(strings.TrimSpace(name))); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject by name %q: %w", name, err)
	}
	return toDomainSubject(&m), nil
}

func (a *SubjectDatabaseAdapter) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	if subject.ID == "" {
		subject.ID = util.NewULID()
	}
	subject.Name = strings.TrimSpace(subject.Name)
	subject.CreatedAt = time.Now()

	query := `INSERT INTO subjects (id, name, created_at) VALUES (:1, :2, :3)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, subject.ID, subject.Name, subject.CreatedAt); err != nil {
		return fmt.Errorf("failed to create subject %q: %w", subject.Name, err)
	}
	return nil
}

func toDomainSubject(m *models.Subject) *domain.Subject {
	return &domain.Subject{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}
