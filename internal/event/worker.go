package event

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/domain"

	"go.uber.org/zap"
)

const (
	defaultPopTimeout   = 5 * time.Second
	defaultErrorBackoff = time.Second
	evaluationTimeout   = 30 * time.Second
)

// AchievementWorker drains the achievement queue and runs the evaluator for each event.
type AchievementWorker struct {
	queue        *RedisAchievementQueue
	evaluator    domain.AchievementEvaluator
	logger       *zap.Logger
	popTimeout   time.Duration
	errorBackoff time.Duration
}

func NewAchievementWorker(queue *RedisAchievementQueue, evaluator domain.AchievementEvaluator, logger *zap.Logger) *AchievementWorker {
	return &AchievementWorker{
		queue:        queue,
		evaluator:    evaluator,
		logger:       logger,
		popTimeout:   defaultPopTimeout,
		errorBackoff: defaultErrorBackoff,
	}
}

// Run blocks until ctx is cancelled.
func (w *AchievementWorker) Run(ctx context.Context) {
	w.logger.Info("Achievement worker started")
	defer w.logger.Info("Achievement worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev, err := w.queue.Pop(ctx, w.popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("Failed to read achievement queue", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorBackoff):
			}
			continue
		}
		if ev == nil {
			continue
		}
		if err := safeEvaluate(ctx, w.evaluator, ev.UserID); err != nil {
			w.logger.Error("Achievement evaluation failed",
				zap.String("user_id", ev.UserID),
				zap.Error(err),
			)
		}
	}
}

func safeEvaluate(ctx context.Context, evaluator domain.AchievementEvaluator, userID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewAchievementEvaluationError(userID, fmt.Errorf("panic: %v", r))
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, evaluationTimeout)
	defer cancel()
	return evaluator.Evaluate(ctx, userID)
}
