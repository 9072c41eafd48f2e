package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"padhobadho/internal/cache"
	"padhobadho/internal/domain"
	"padhobadho/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedQuestionRepository is a read-through cache in front of a QuestionRepository.
// Only single-question lookups are cached; everything else goes straight to the wrapped repository.
// Callers that delete a question must drop cache.QuestionKey after their transaction commits.
type CachedQuestionRepository struct {
	domain.QuestionRepository
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedQuestionRepository returns repo unchanged when no cache is configured.
func NewCachedQuestionRepository(repo domain.QuestionRepository, c domain.Cache, ttl time.Duration) domain.QuestionRepository {
	if c == nil {
		return repo
	}
	return &CachedQuestionRepository{QuestionRepository: repo, cache: c, ttl: ttl}
}

func (r *CachedQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	key := cache.QuestionKey(id)

	raw, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var q domain.Question
		errUnmarshal := json.Unmarshal([]byte(raw), &q)
		if errUnmarshal == nil {
			return &q, nil
		}
		logger.Get().Warn("Discarding undecodable cached question", zap.String("key", key), zap.Error(errUnmarshal))
	case errors.Is(err, domain.ErrCacheMiss):
	default:
		logger.Get().Warn("Question cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
	}

	// Callers joining the flight share this load, so it must outlive the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	res, err, _ := r.sfGroup.Do(key, func() (interface{}, error) {
		q, fetchErr := r.QuestionRepository.GetQuestionByID(loadCtx, id)
		if fetchErr != nil || q == nil {
			return q, fetchErr
		}
		payload, errMarshal := json.Marshal(q)
		if errMarshal != nil {
			logger.Get().Error("Failed to encode question for caching", zap.String("questionID", id), zap.Error(errMarshal))
			return q, nil
		}
		if errSet := r.cache.Set(loadCtx, key, string(payload), r.ttl); errSet != nil {
			logger.Get().Warn("Failed to cache question", zap.String("questionID", id), zap.Error(errSet))
		}
		return q, nil
	})
	if err != nil {
		return nil, err
	}

	q, ok := res.(*domain.Question)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for question: %T", res)
	}
	return q, nil
}
