package repository

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// Quest defines the interface for quest persistence
type Quest interface {
	FindQuest(ctx context.Context, questID string) (*domain.Quest, error)
	SaveQuest(ctx context.Context, quest *domain.Quest) error
	GetQuestsByStatus(ctx context.Context, status domain.QuestStatus) ([]*domain.Quest, error)
}
