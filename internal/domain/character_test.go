package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveJob_NoOverride(t *testing.T) {
	c := &Character{Name: "Mira", Job: "merchant"}

	assert.Equal(t, "merchant", c.EffectiveJob())
}

func TestEffectiveJob_ActiveOverrideWins(t *testing.T) {
	c := &Character{
		Name: "Mira",
		Job:  "merchant",
		JobOverride: &JobOverride{
			Job:       "entertainer",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		},
	}

	assert.Equal(t, "entertainer", c.EffectiveJob())
}

func TestEffectiveJob_ExpiredOverrideIgnored(t *testing.T) {
	c := &Character{
		Name: "Mira",
		Job:  "merchant",
		JobOverride: &JobOverride{
			Job:       "entertainer",
			ExpiresAt: time.Now().UTC().Add(-time.Hour),
		},
	}

	assert.Equal(t, "merchant", c.EffectiveJob())
}

func TestEffectiveJob_OpenEndedOverride(t *testing.T) {
	c := &Character{
		Name:        "Mira",
		Job:         "merchant",
		JobOverride: &JobOverride{Job: "entertainer"},
	}

	assert.Equal(t, "entertainer", c.EffectiveJob())
}

func TestJobOverrideActive_NilSafe(t *testing.T) {
	var o *JobOverride

	assert.False(t, o.Active(time.Now()))
	assert.False(t, (&JobOverride{}).Active(time.Now()))
}
