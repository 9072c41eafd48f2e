package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"padhobadho/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDatabaseAdapter(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserDatabaseAdapter(db)
	now := time.Now().Truncate(time.Second)
	userCols := []string{"ID", "XP", "USER_LEVEL", "CURRENT_STREAK", "LONGEST_STREAK", "LAST_ACTIVE_DATE", "CREATED_AT", "UPDATED_AT"}

	mock.ExpectExec(`MERGE INTO users u .* WHEN NOT MATCHED THEN INSERT`).
		WithArgs("u1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.EnsureUser(context.Background(), "u1"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = :1 FOR UPDATE")).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u1", 995, 1, 4, 6, now, now, now))
	p, err := repo.GetProgressForUpdate(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 995, p.XP)
	require.NotNil(t, p.LastActiveDate)
	assert.True(t, now.Equal(*p.LastActiveDate))

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = :1")).WithArgs("new").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("new", 0, 1, 0, 0, nil, now, now))
	p, err = repo.GetProgress(context.Background(), "new")
	require.NoError(t, err)
	assert.Nil(t, p.LastActiveDate)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = :1")).WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userCols))
	p, err = repo.GetProgress(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, p)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDatabaseAdapter_UpdateProgressDerivesLevel(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserDatabaseAdapter(db)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs(1020, 2, 5, 6, now, sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Level 7 is stale on purpose; the stored level must follow xp.
	require.NoError(t, repo.UpdateProgress(context.Background(), &domain.UserProgress{
		UserID: "u1", XP: 1020, Level: 7, CurrentStreak: 5, LongestStreak: 6, LastActiveDate: &now,
	}))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateProgress(context.Background(), &domain.UserProgress{UserID: "ghost"})
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeUserNotFound, de.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
