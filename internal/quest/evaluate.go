package quest

import (
	"context"
	"time"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
)

// evaluateCompletion applies the quest-type predicate to a participant
// still active, after pulling in any externally-approved submissions
func (s *service) evaluateCompletion(ctx context.Context, q *domain.Quest, p *domain.Participant) error {
	if p.Progress != domain.ProgressActive {
		return nil
	}

	if err := s.syncApprovedSubmissions(ctx, q, p); err != nil {
		// Evaluate against the local record anyway; the monthly sweep
		// retries the sync
		logger.FromContext(ctx).Warn("Submission sync failed before evaluation",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
	}

	if !s.registry.Handler(q.QuestType).CheckCompletion(q, p) {
		return nil
	}

	s.markCompleted(ctx, q, p)
	return nil
}

// markCompleted transitions the participant and immediately records the
// zero-reward safeguard entry in the user's permanent history. The entry
// is upserted by quest id, so redundant calls never duplicate it, and any
// process counting completions stays correct even if reward processing is
// delayed or fails.
func (s *service) markCompleted(ctx context.Context, q *domain.Quest, p *domain.Participant) {
	p.Progress = domain.ProgressCompleted
	if p.CompletedAt == nil {
		now := time.Now().UTC()
		p.CompletedAt = &now
	}
	if p.RewardSource == "" {
		p.RewardSource = domain.RewardSourcePending
	}

	entry := domain.CompletionEntry{
		QuestID:      q.ID,
		QuestType:    q.QuestType,
		QuestTitle:   q.Title,
		CompletedAt:  p.CompletedAt,
		TokensEarned: 0,
		RewardSource: domain.RewardSourcePending,
	}
	if err := s.ledger.RecordCompletion(ctx, p.UserID, entry); err != nil {
		logger.FromContext(ctx).Error("Failed to record pending completion entry",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
		return
	}

	logger.FromContext(ctx).Info("Participant completed quest",
		"quest_id", q.ID, "user_id", p.UserID, "character", p.CharacterName)
}
