package quest

import (
	"context"
	"strings"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/reward"
)

const entertainerJob = "entertainer"

// buildRewardContext inspects every eligible participant's character and
// assembles the shared per-quest bonus state. A lookup failure excludes
// that participant from bonus detection but is never fatal.
func (s *service) buildRewardContext(ctx context.Context, q *domain.Quest) *reward.Context {
	log := logger.FromContext(ctx)

	var entertainers []string
	for _, p := range q.Participants {
		if !p.Eligible() {
			continue
		}

		c, err := s.characters.FindCharacter(ctx, p.UserID, p.CharacterName)
		if err != nil {
			log.Warn("Character lookup failed during bonus detection",
				"quest_id", q.ID, "user_id", p.UserID, "character", p.CharacterName, "error", err)
			continue
		}

		if strings.EqualFold(c.EffectiveJob(), entertainerJob) {
			entertainers = append(entertainers, c.Name)
		}
	}

	rctx := &reward.Context{}
	if len(entertainers) > 0 {
		rctx.Entertainer = reward.EntertainerBonus{
			Enabled:              true,
			AmountPerParticipant: s.cfg.EntertainerBonusAmount,
			Entertainers:         entertainers,
		}
		log.Info("Entertainer bonus active",
			"quest_id", q.ID, "entertainers", entertainers,
			"amount_per_participant", s.cfg.EntertainerBonusAmount)
	}
	return rctx
}
