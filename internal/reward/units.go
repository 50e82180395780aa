package reward

import "github.com/roothaven/RootsBot_Go/internal/domain"

// CountUnits counts the billable units a participant has produced for a
// per-unit reward formula. Units are approved submissions matching the
// quest's type rules; unit kinds other than "submission" degrade to the
// same counting behavior. The result is capped at the spec's max and
// cached on the participant for inspection.
func CountUnits(q *domain.Quest, p *domain.Participant, spec Spec) int {
	if spec.PerUnit <= 0 || spec.Unit == "" {
		return 0
	}

	var units int
	switch q.QuestType {
	case domain.QuestTypeArt:
		units = p.CountApproved(domain.SubmissionTypeArt)
	case domain.QuestTypeWriting:
		units = p.CountApproved(domain.SubmissionTypeWriting)
	case domain.QuestTypeArtWriting:
		units = p.CountApproved(domain.SubmissionTypeArt, domain.SubmissionTypeWriting)
	default:
		units = p.CountApproved()
	}

	if spec.MaxUnits > 0 && units > spec.MaxUnits {
		units = spec.MaxUnits
	}

	p.UnitsCounted = units
	return units
}
