package repository

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// Inventory defines the interface for the item catalog and character
// inventories
type Inventory interface {
	// ResolveItem looks an item up by name in the catalog
	ResolveItem(ctx context.Context, name string) (*domain.Item, error)

	// GrantItem adds quantity of the item to the character's inventory,
	// incrementing an existing stack or creating a new one
	GrantItem(ctx context.Context, userID, characterName string, item domain.Item, quantity int) error
}
