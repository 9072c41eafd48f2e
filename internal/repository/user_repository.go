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

const userProgressQuery = `SELECT id "ID", xp "XP", user_level "USER_LEVEL",
		current_streak "CURRENT_STREAK", longest_streak "LONGEST_STREAK",
		last_active_date "LAST_ACTIVE_DATE", created_at "CREATED_AT", updated_at "UPDATED_AT"
	FROM users WHERE id = :1`

// UserDatabaseAdapter reads and writes the gamification columns of users.
type UserDatabaseAdapter struct {
	db *sqlx.DB
}

func NewUserDatabaseAdapter(db *sqlx.DB) domain.UserRepository {
	return &UserDatabaseAdapter{db: db}
}

// EnsureUser creates the row for an identity seen for the first time.
func (a *UserDatabaseAdapter) EnsureUser(ctx context.Context, userID string) error {
	now := time.Now()
	query := `MERGE INTO users u
	USING (SELECT :1 AS id FROM DUAL) src
	ON (u.id = src.id)
	WHEN NOT MATCHED THEN INSERT (id, xp, user_level, current_streak, longest_streak, created_at, updated_at)
		VALUES (src.id, 0, 1, 0, 0, :2, :3)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, userID, now, now); err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", userID, err)
	}
	return nil
}

func (a *UserDatabaseAdapter) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	return a.getProgress(ctx, userProgressQuery, userID)
}

func (a *UserDatabaseAdapter) GetProgressForUpdate(ctx context.Context, userID string) (*domain.UserProgress, error) {
	return a.getProgress(ctx, userProgressQuery+` FOR UPDATE`, userID)
}

func (a *UserDatabaseAdapter) getProgress(ctx context.Context, query, userID string) (*domain.UserProgress, error) {
	var m models.User
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress for user %s: %w", userID, err)
	}
	return toDomainProgress(&m), nil
}

// UpdateProgress always derives the stored level from xp.
func (a *UserDatabaseAdapter) UpdateProgress(ctx context.Context, p *domain.UserProgress) error {
	var lastActive sql.NullTime
	if p.LastActiveDate != nil {
		lastActive = util.TimeToNullTime(*p.LastActiveDate)
	}
	query := `UPDATE users SET
		xp = :1,
		user_level = :2,
		current_streak = :3,
		longest_streak = :4,
		last_active_date = :5,
		updated_at = :6
	WHERE id = :7`

	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		p.XP,
		domain.LevelForXP(p.XP),
		p.CurrentStreak,
		p.LongestStreak,
		lastActive,
		time.Now(),
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress for user %s: %w", p.UserID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewUserNotFoundError(p.UserID)
	}
	return nil
}

func toDomainProgress(m *models.User) *domain.UserProgress {
	var lastActive *time.Time
	if m.LastActiveDate.Valid {
		t := m.LastActiveDate.Time
		lastActive = &t
	}
	return &domain.UserProgress{
		UserID:         m.ID,
		XP:             m.XP,
		Level:          m.Level,
		CurrentStreak:  m.CurrentStreak,
		LongestStreak:  m.LongestStreak,
		LastActiveDate: lastActive,
	}
}
