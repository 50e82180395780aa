package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// SubmissionRepository reads the external approved-submissions store
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// FindApproved returns every approved submission for the quest/user pair
func (r *SubmissionRepository) FindApproved(ctx context.Context, questID, userID string) ([]domain.Submission, error) {
	query := `
		SELECT submission_type, approved, approved_at, source_ref
		FROM approved_submissions
		WHERE quest_id = $1 AND user_id = $2 AND approved = TRUE
		ORDER BY approved_at
	`

	rows, err := r.db.Query(ctx, query, questID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var (
			s          domain.Submission
			approvedAt *time.Time
		)
		if err := rows.Scan(&s.Type, &s.Approved, &approvedAt, &s.SourceRef); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if approvedAt != nil {
			s.ApprovedAt = *approvedAt
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
