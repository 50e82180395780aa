package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

func approved(subType string) domain.Submission {
	return domain.Submission{Type: subType, Approved: true, ApprovedAt: time.Now().UTC()}
}

func TestRPHandler_CheckCompletion(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeRP)

	quest := &domain.Quest{QuestType: domain.QuestTypeRP, PostRequirement: 10}

	assert.False(t, h.CheckCompletion(quest, &domain.Participant{PostCount: 9}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{PostCount: 10}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{PostCount: 30}))
}

func TestRPHandler_DefaultRequirementWhenQuestHasNone(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeRP)

	quest := &domain.Quest{QuestType: domain.QuestTypeRP}

	assert.False(t, h.CheckCompletion(quest, &domain.Participant{PostCount: 14}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{PostCount: 15}))
	assert.Equal(t, "14/15 posts", h.ProgressDescriptor(quest, &domain.Participant{PostCount: 14}))
}

func TestArtHandler_CheckCompletion(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeArt)

	quest := &domain.Quest{QuestType: domain.QuestTypeArt}

	assert.False(t, h.CheckCompletion(quest, &domain.Participant{}))
	assert.False(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{{Type: domain.SubmissionTypeArt, Approved: false}},
	}))
	assert.False(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeWriting)},
	}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeArt)},
	}))
}

func TestWritingHandler_CheckCompletion(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeWriting)

	quest := &domain.Quest{QuestType: domain.QuestTypeWriting}

	assert.False(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeArt)},
	}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeWriting)},
	}))
}

func TestArtWritingHandler_BothModeIsDefault(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeArtWriting)

	quest := &domain.Quest{QuestType: domain.QuestTypeArtWriting}

	assert.False(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeArt)},
	}))
	assert.False(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeWriting)},
	}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{
			approved(domain.SubmissionTypeArt),
			approved(domain.SubmissionTypeWriting),
		},
	}))
}

func TestArtWritingHandler_EitherMode(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeArtWriting)

	quest := &domain.Quest{
		QuestType:      domain.QuestTypeArtWriting,
		ArtWritingMode: domain.ArtWritingModeEither,
	}

	assert.True(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeArt)},
	}))
	assert.True(t, h.CheckCompletion(quest, &domain.Participant{
		Submissions: []domain.Submission{approved(domain.SubmissionTypeWriting)},
	}))
	assert.False(t, h.CheckCompletion(quest, &domain.Participant{}))
}

func TestInteractiveHandler_AlwaysCompletes(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestTypeInteractive)

	quest := &domain.Quest{QuestType: domain.QuestTypeInteractive, RequiredRolls: 3}
	participant := &domain.Participant{SuccessfulRolls: 1}

	assert.True(t, h.CheckCompletion(quest, participant))
	assert.Equal(t, "1/3 successful rolls", h.ProgressDescriptor(quest, participant))
}

func TestRegistry_UnknownTypeFallsBack(t *testing.T) {
	registry := NewRegistry(15)
	h := registry.Handler(domain.QuestType("seasonal_event"))

	quest := &domain.Quest{QuestType: "seasonal_event"}

	assert.True(t, h.CheckCompletion(quest, &domain.Participant{}))
	assert.Equal(t, "✅ Completed", h.ProgressDescriptor(quest, &domain.Participant{}))
}
