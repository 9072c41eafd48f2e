package event

import (
	"context"
	"sync"

	"padhobadho/internal/domain"

	"go.uber.org/zap"
)

// InlineNotifier evaluates achievements on a background goroutine of the
// current process. Used when no Redis queue is configured.
type InlineNotifier struct {
	evaluator domain.AchievementEvaluator
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewInlineNotifier(evaluator domain.AchievementEvaluator, logger *zap.Logger) *InlineNotifier {
	return &InlineNotifier{evaluator: evaluator, logger: logger}
}

// Notify never blocks on the evaluation and never fails.
func (n *InlineNotifier) Notify(ctx context.Context, userID string) error {
	// The request context ends when the response is written.
	detached := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := safeEvaluate(detached, n.evaluator, userID); err != nil {
			n.logger.Error("Achievement evaluation failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}()
	return nil
}

// Wait blocks until every pending evaluation has finished.
func (n *InlineNotifier) Wait() {
	n.wg.Wait()
}
