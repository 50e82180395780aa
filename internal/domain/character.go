package domain

import "time"

// Character is a user's playable character. A character has a permanent
// job and may carry a temporary override from a job voucher.
type Character struct {
	ID          string       `json:"character_id"`
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Job         string       `json:"job"`
	JobOverride *JobOverride `json:"job_override,omitempty"`
}

// JobOverride is a temporary job swap. A zero ExpiresAt means the
// override stays active until explicitly cleared.
type JobOverride struct {
	Job       string    `json:"job"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Active reports whether the override currently applies
func (o *JobOverride) Active(now time.Time) bool {
	if o == nil || o.Job == "" {
		return false
	}
	return o.ExpiresAt.IsZero() || now.Before(o.ExpiresAt)
}

// EffectiveJob resolves the character's current job: an active temporary
// override takes precedence over the permanent job
func (c *Character) EffectiveJob() string {
	if c.JobOverride.Active(time.Now().UTC()) {
		return c.JobOverride.Job
	}
	return c.Job
}
