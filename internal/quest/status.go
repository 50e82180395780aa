package quest

import "github.com/roothaven/RootsBot_Go/internal/domain"

// RewardStatus classifies a participant's persisted state for the
// idempotency guard
type RewardStatus string

const (
	StatusNotCompleted    RewardStatus = "not_completed"
	StatusNeedsRewarding  RewardStatus = "needs_rewarding"
	StatusAlreadyRewarded RewardStatus = "already_rewarded"
)

// ClassifyRewardStatus is the sole gate preventing double-crediting across
// the immediate and reconciliation trigger paths. It must be evaluated
// immediately before every distribution call, never cached.
func ClassifyRewardStatus(p *domain.Participant) RewardStatus {
	if p.Progress == domain.ProgressRewarded ||
		p.RewardProcessed ||
		p.TokensEarned > 0 ||
		len(p.ItemsEarned) > 0 {
		return StatusAlreadyRewarded
	}
	if p.Progress == domain.ProgressCompleted {
		return StatusNeedsRewarding
	}
	return StatusNotCompleted
}
