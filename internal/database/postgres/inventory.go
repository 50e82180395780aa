package postgres

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

const itemCacheSize = 256

// InventoryRepository implements the item catalog and character
// inventories for PostgreSQL. Catalog rows change rarely, so name
// lookups go through a small LRU cache.
type InventoryRepository struct {
	db    *pgxpool.Pool
	cache *lru.Cache[string, domain.Item]
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) (*InventoryRepository, error) {
	cache, err := lru.New[string, domain.Item](itemCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create item cache: %w", err)
	}
	return &InventoryRepository{db: db, cache: cache}, nil
}

// ResolveItem looks an item up by name in the catalog
func (r *InventoryRepository) ResolveItem(ctx context.Context, name string) (*domain.Item, error) {
	if item, ok := r.cache.Get(name); ok {
		return &item, nil
	}

	query := `SELECT item_id, name, category, emoji FROM items WHERE LOWER(name) = LOWER($1)`

	var item domain.Item
	err := r.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.Name, &item.Category, &item.Emoji)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
		}
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	r.cache.Add(name, item)
	return &item, nil
}

// GrantItem adds quantity of the item to the character's inventory,
// incrementing an existing stack or creating a new one
func (r *InventoryRepository) GrantItem(ctx context.Context, userID, characterName string, item domain.Item, quantity int) error {
	var characterID string
	err := r.db.QueryRow(ctx,
		`SELECT character_id FROM characters WHERE user_id = $1 AND name = $2`,
		userID, characterName).Scan(&characterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s/%s", domain.ErrCharacterNotFound, userID, characterName)
		}
		return fmt.Errorf("failed to resolve character: %w", err)
	}

	query := `
		INSERT INTO character_items (character_id, item_id, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (character_id, item_id)
		DO UPDATE SET quantity = character_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, characterID, item.ID, quantity); err != nil {
		return fmt.Errorf("failed to grant item: %w", err)
	}
	return nil
}
