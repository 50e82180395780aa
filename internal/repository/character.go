package repository

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// Character defines the interface for character lookups
type Character interface {
	FindCharacter(ctx context.Context, userID, name string) (*domain.Character, error)
}
