package repository

import (
	"context"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// Submission defines the interface for the external approved-submissions
// store
type Submission interface {
	FindApproved(ctx context.Context, questID, userID string) ([]domain.Submission, error)
}
