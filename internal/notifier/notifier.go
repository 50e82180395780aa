package notifier

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/reward"
)

// Notifier delivers reward and quest lifecycle announcements
type Notifier interface {
	NotifyRewarded(ctx context.Context, q *domain.Quest, p *domain.Participant, result *reward.Result) error
	NotifyQuestSummary(ctx context.Context, q *domain.Quest, reason string) error
}

// Noop discards all notifications; used in tests and headless runs
type Noop struct{}

func (Noop) NotifyRewarded(ctx context.Context, q *domain.Quest, p *domain.Participant, result *reward.Result) error {
	return nil
}

func (Noop) NotifyQuestSummary(ctx context.Context, q *domain.Quest, reason string) error {
	return nil
}
