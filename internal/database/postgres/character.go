package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// CharacterRepository implements character lookups for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// FindCharacter loads a character by owner and name
func (r *CharacterRepository) FindCharacter(ctx context.Context, userID, name string) (*domain.Character, error) {
	query := `
		SELECT character_id, user_id, name, job, job_override
		FROM characters
		WHERE user_id = $1 AND name = $2
	`

	var (
		c            domain.Character
		overrideJSON []byte
	)
	err := r.db.QueryRow(ctx, query, userID, name).Scan(&c.ID, &c.UserID, &c.Name, &c.Job, &overrideJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrCharacterNotFound, userID, name)
		}
		return nil, fmt.Errorf("failed to query character: %w", err)
	}

	if len(overrideJSON) > 0 {
		if err := json.Unmarshal(overrideJSON, &c.JobOverride); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job override: %w", err)
		}
	}
	return &c, nil
}
