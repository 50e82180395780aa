package domain

import "time"

// ProgressState tracks a participant's position in the quest lifecycle
type ProgressState string

const (
	ProgressActive       ProgressState = "active"
	ProgressCompleted    ProgressState = "completed"
	ProgressFailed       ProgressState = "failed"
	ProgressRewarded     ProgressState = "rewarded"
	ProgressDisqualified ProgressState = "disqualified"
)

// RewardSource records which path granted (or will grant) a reward
type RewardSource string

const (
	RewardSourceImmediate RewardSource = "immediate"
	RewardSourceMonthly   RewardSource = "monthly"
	RewardSourcePending   RewardSource = "pending"
)

// Submission type constants
const (
	SubmissionTypeArt     = "art"
	SubmissionTypeWriting = "writing"
)

// Submission is a creative contribution attached to a participant
type Submission struct {
	Type       string    `json:"type"`
	Approved   bool      `json:"approved"`
	ApprovedAt time.Time `json:"approved_at,omitempty"`
	SourceRef  string    `json:"source_ref,omitempty"` // submission URL
}

// ItemGrant is an item actually delivered to a participant
type ItemGrant struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Participant is a user+character pair enrolled in a quest
type Participant struct {
	UserID          string        `json:"user_id"`
	CharacterName   string        `json:"character_name"`
	Progress        ProgressState `json:"progress"`
	PostCount       int           `json:"post_count,omitempty"`
	SuccessfulRolls int           `json:"successful_rolls,omitempty"`
	Submissions     []Submission  `json:"submissions,omitempty"`
	TokensEarned    int           `json:"tokens_earned"`
	ItemsEarned     []ItemGrant   `json:"items_earned,omitempty"`
	UnitsCounted    int           `json:"units_counted,omitempty"`
	RewardProcessed bool          `json:"reward_processed"`
	RewardSource    RewardSource  `json:"reward_source,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	RewardedAt      *time.Time    `json:"rewarded_at,omitempty"`
	LastRewardCheck *time.Time    `json:"last_reward_check,omitempty"`
}

// Eligible reports whether the participant can still receive rewards
func (p *Participant) Eligible() bool {
	return p.Progress != ProgressFailed && p.Progress != ProgressDisqualified
}

// HasApproved reports whether the participant has at least one approved
// submission of the given type
func (p *Participant) HasApproved(subType string) bool {
	for _, s := range p.Submissions {
		if s.Approved && s.Type == subType {
			return true
		}
	}
	return false
}

// CountApproved counts approved submissions matching any of the given
// types; with no types it counts all approved submissions
func (p *Participant) CountApproved(types ...string) int {
	count := 0
	for _, s := range p.Submissions {
		if !s.Approved {
			continue
		}
		if len(types) == 0 {
			count++
			continue
		}
		for _, t := range types {
			if s.Type == t {
				count++
				break
			}
		}
	}
	return count
}
