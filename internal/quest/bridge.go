package quest

import (
	"context"
	"time"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/metrics"
)

// syncApprovedSubmissions pulls externally-approved creative submissions
// into the participant's record before evaluation. Approval can land
// after the participant's local record fell out of sync; this closes
// that race. The function is called defensively from several entry
// points and is safe to call redundantly: matched submissions are never
// inserted twice and the safeguard entry is keyed by quest id.
func (s *service) syncApprovedSubmissions(ctx context.Context, q *domain.Quest, p *domain.Participant) error {
	if !q.RequiresCreativeWork() {
		return nil
	}

	approved, err := s.submissions.FindApproved(ctx, q.ID, p.UserID)
	if err != nil {
		return err
	}

	added := 0
	for _, sub := range approved {
		if s.hasSubmission(p, sub) {
			continue
		}
		p.Submissions = append(p.Submissions, sub)
		added++
	}

	if added > 0 {
		metrics.SubmissionsReconciled.Add(float64(added))
		logger.FromContext(ctx).Info("Reconciled approved submissions",
			"quest_id", q.ID, "user_id", p.UserID, "added", added)
	}

	// A newly satisfied predicate promotes the participant right away so
	// completion counts are never stale
	if added > 0 && p.Progress == domain.ProgressActive &&
		s.registry.Handler(q.QuestType).CheckCompletion(q, p) {
		s.markCompleted(ctx, q, p)
	}

	return nil
}

// hasSubmission reports whether the participant's record already reflects
// the incoming submission: matched by URL when one exists, otherwise by
// a fuzzy {type, approved, approvedAt} comparison to avoid duplicate
// inserts when the source never recorded a URL
func (s *service) hasSubmission(p *domain.Participant, incoming domain.Submission) bool {
	for _, existing := range p.Submissions {
		if incoming.SourceRef != "" && existing.SourceRef == incoming.SourceRef {
			return true
		}
		if existing.Type == incoming.Type &&
			existing.Approved == incoming.Approved &&
			within(existing.ApprovedAt, incoming.ApprovedAt, s.cfg.SubmissionMatchWindow) {
			return true
		}
	}
	return false
}

func within(a, b time.Time, window time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= window
}
