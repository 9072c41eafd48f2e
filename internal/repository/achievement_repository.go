package repository

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"
	"padhobadho/internal/repository/models"
	"padhobadho/internal/util"

	"github.com/jmoiron/sqlx"
)

// AchievementDatabaseAdapter implements domain.AchievementRepository.
type AchievementDatabaseAdapter struct {
	db *sqlx.DB
}

func NewAchievementDatabaseAdapter(db *sqlx.DB) domain.AchievementRepository {
	return &AchievementDatabaseAdapter{db: db}
}

func (a *AchievementDatabaseAdapter) GetUnlockedCodes(ctx context.Context, userID string) ([]domain.AchievementCode, error) {
	var codes []string
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &codes, `SELECT code FROM user_achievements WHERE user_id = :1`, userID); err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievements for user %s: %w", userID, err)
	}
	result := make([]domain.AchievementCode, len(codes))
	for i, c := range codes {
		result[i] = domain.AchievementCode(c)
	}
	return result, nil
}

func (a *AchievementDatabaseAdapter) GetUserAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	var rows []models.UserAchievement
	query := `SELECT id "ID", user_id "USER_ID", code "CODE", unlocked_at "UNLOCKED_AT"
	FROM user_achievements WHERE user_id = :1 ORDER BY unlocked_at`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get achievements for user %s: %w", userID, err)
	}
	achievements := make([]domain.UserAchievement, 0, len(rows))
	for _, r := range rows {
		achievements = append(achievements, domain.UserAchievement{
			UserID:     r.UserID,
			Code:       domain.AchievementCode(r.Code),
			UnlockedAt: r.UnlockedAt,
		})
	}
	return achievements, nil
}

// Unlock inserts only when (user_id, code) is absent.
func (a *AchievementDatabaseAdapter) Unlock(ctx context.Context, userID string, code domain.AchievementCode, unlockedAt time.Time) error {
	query := `MERGE INTO user_achievements ua
	USING (SELECT :1 AS user_id, :2 AS code FROM DUAL) src
	ON (ua.user_id = src.user_id AND ua.code = src.code)
	WHEN NOT MATCHED THEN INSERT (id, user_id, code, unlocked_at)
		VALUES (:3, src.user_id, src.code, :4)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, userID, string(code), util.NewULID(), unlockedAt); err != nil {
		return fmt.Errorf("failed to unlock achievement %s for user %s: %w", code, userID, err)
	}
	return nil
}
