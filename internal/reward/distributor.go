package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/metrics"
	"github.com/roothaven/RootsBot_Go/internal/repository"
)

// Breakdown itemizes how a participant's token total was assembled
type Breakdown struct {
	Base             int `json:"base"`
	EntertainerBonus int `json:"entertainer_bonus"`
	Total            int `json:"total"`
}

// Result reports the outcome of a single distribution call. Success is
// false only when every sub-operation failed; partial success keeps the
// grants that landed and reports the rest in Errors.
type Result struct {
	Success          bool               `json:"success"`
	TokensAdded      int                `json:"tokens_added"`
	ItemsDistributed []domain.ItemGrant `json:"items_distributed,omitempty"`
	Breakdown        Breakdown          `json:"token_breakdown"`
	Errors           []string           `json:"errors,omitempty"`
}

// Distributor computes final token/item totals for a participant and
// performs the two grant side-effects: ledger credit and item grant
type Distributor struct {
	ledger    repository.Ledger
	inventory repository.Inventory
}

func NewDistributor(ledger repository.Ledger, inventory repository.Inventory) *Distributor {
	return &Distributor{
		ledger:    ledger,
		inventory: inventory,
	}
}

// Distribute grants the quest's reward to one participant. Callers must
// consult the reward status classifier immediately before calling; the
// distributor itself performs no idempotency check.
func (d *Distributor) Distribute(ctx context.Context, q *domain.Quest, p *domain.Participant, rctx *Context) *Result {
	log := logger.FromContext(ctx)
	result := &Result{}

	spec := ParseFormula(q.RewardExpression)

	base := spec.Flat
	if spec.PerUnit > 0 && spec.Unit != "" {
		base += spec.PerUnit * CountUnits(q, p, spec)
	}
	if base == 0 {
		// Backward compatibility with quests that predate reward expressions
		base = q.TokenReward
	}

	var bonus int
	if rctx != nil && rctx.Entertainer.Enabled && p.Eligible() {
		bonus = rctx.Entertainer.AmountPerParticipant
	}

	total := base + bonus
	result.Breakdown = Breakdown{Base: base, EntertainerBonus: bonus, Total: total}

	attempted, failed := 0, 0

	if total > 0 {
		attempted++
		meta := domain.TransactionMeta{
			QuestID:    q.ID,
			QuestTitle: q.Title,
			Reason:     "quest_reward",
		}
		transfer, err := d.ledger.CreditTokens(ctx, p.UserID, total, meta)
		if err != nil {
			failed++
			result.Errors = append(result.Errors, fmt.Sprintf("token credit failed: %v", err))
			log.Error("Failed to credit quest tokens",
				"quest_id", q.ID, "user_id", p.UserID, "amount", total, "error", err)
		} else {
			result.TokensAdded = total
			metrics.TokensCredited.Add(float64(total))
			log.Info("Credited quest tokens",
				"quest_id", q.ID, "user_id", p.UserID, "amount", total,
				"balance_before", transfer.BalanceBefore, "balance_after", transfer.BalanceAfter)
		}
	}

	for _, ir := range q.ItemRewardList() {
		attempted++
		grant, err := d.grantItem(ctx, q, p, ir)
		if err != nil {
			failed++
			result.Errors = append(result.Errors, err.Error())
			metrics.DistributionErrors.Inc()
			log.Error("Failed to distribute item reward",
				"quest_id", q.ID, "user_id", p.UserID, "item", ir.Name, "error", err)
			continue
		}
		result.ItemsDistributed = append(result.ItemsDistributed, *grant)
	}

	result.Success = attempted == 0 || failed < attempted
	if result.Success {
		metrics.RewardsDistributed.Inc()
	}
	return result
}

func (d *Distributor) grantItem(ctx context.Context, q *domain.Quest, p *domain.Participant, ir domain.ItemReward) (*domain.ItemGrant, error) {
	item, err := d.inventory.ResolveItem(ctx, ir.Name)
	if err != nil {
		return nil, fmt.Errorf("item %q could not be resolved: %w", ir.Name, err)
	}

	if err := d.inventory.GrantItem(ctx, p.UserID, p.CharacterName, *item, ir.Quantity); err != nil {
		return nil, fmt.Errorf("item %q could not be granted: %w", ir.Name, err)
	}

	logger.FromContext(ctx).Info("Granted quest item",
		"quest_id", q.ID, "user_id", p.UserID, "character", p.CharacterName,
		"item", item.Name, "quantity", ir.Quantity, "granted_at", time.Now().UTC())

	return &domain.ItemGrant{Name: item.Name, Quantity: ir.Quantity}, nil
}
