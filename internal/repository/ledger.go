package repository

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// Ledger defines the interface for the user currency ledger and the
// append-only completion history
type Ledger interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// CreditTokens adds amount to the user's balance and appends an audit
	// transaction record carrying the before/after balances
	CreditTokens(ctx context.Context, userID string, amount int, meta domain.TransactionMeta) (*domain.TokenTransfer, error)

	// RecordCompletion upserts the completion-history entry keyed by the
	// entry's quest id: exactly one entry per quest, updated in place
	RecordCompletion(ctx context.Context, userID string, entry domain.CompletionEntry) error
}
