package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// LedgerRepository implements the user currency ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetUser loads a user's balance and completion history
func (r *LedgerRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT user_id, username, tokens, completions FROM users WHERE user_id = $1`

	var (
		u               domain.User
		completionsJSON []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Username, &u.Tokens, &completionsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if err := json.Unmarshal(completionsJSON, &u.Completions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completions: %w", err)
	}
	return &u, nil
}

// CreditTokens adds amount to the user's balance and records an audit
// transaction carrying the before/after balances. The balance update and
// the audit row share one transaction.
func (r *LedgerRepository) CreditTokens(ctx context.Context, userID string, amount int, meta domain.TransactionMeta) (*domain.TokenTransfer, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var before int
	err = tx.QueryRow(ctx, `SELECT tokens FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&before)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	after := before + amount
	_, err = tx.Exec(ctx, `UPDATE users SET tokens = $1, updated_at = NOW() WHERE user_id = $2`, after, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO token_transactions
			(transaction_id, user_id, amount, balance_before, balance_after, quest_id, quest_title, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.NewString(), userID, amount, before, after, meta.QuestID, meta.QuestTitle, meta.Reason)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit credit: %w", err)
	}
	return &domain.TokenTransfer{BalanceBefore: before, BalanceAfter: after}, nil
}

// RecordCompletion upserts the completion-history entry keyed by quest id.
// The history lives in a JSONB column; the row is locked for the duration
// of the rewrite so one quest id never ends up with two entries.
func (r *LedgerRepository) RecordCompletion(ctx context.Context, userID string, entry domain.CompletionEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var completionsJSON []byte
	err = tx.QueryRow(ctx, `SELECT completions FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&completionsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return fmt.Errorf("failed to read completions: %w", err)
	}

	var completions []domain.CompletionEntry
	if err := json.Unmarshal(completionsJSON, &completions); err != nil {
		return fmt.Errorf("failed to unmarshal completions: %w", err)
	}

	replaced := false
	for i := range completions {
		if completions[i].QuestID == entry.QuestID {
			completions[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		completions = append(completions, entry)
	}

	updated, err := json.Marshal(completions)
	if err != nil {
		return fmt.Errorf("failed to marshal completions: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE users SET completions = $1, updated_at = NOW() WHERE user_id = $2`, updated, userID)
	if err != nil {
		return fmt.Errorf("failed to update completions: %w", err)
	}

	return tx.Commit(ctx)
}
