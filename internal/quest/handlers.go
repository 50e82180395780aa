package quest

import (
	"fmt"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// TypeHandler supplies the per-quest-type completion predicate and the
// display strings used when notifying a rewarded participant
type TypeHandler interface {
	CheckCompletion(q *domain.Quest, p *domain.Participant) bool
	ProgressDescriptor(q *domain.Quest, p *domain.Participant) string
	Title() string
	Description(q *domain.Quest, p *domain.Participant) string
}

// Registry maps quest types to their handlers. Lookups for unregistered
// types return a safe fallback handler.
type Registry struct {
	handlers map[domain.QuestType]TypeHandler
	fallback TypeHandler
}

// NewRegistry builds the registry with one handler per known quest type.
// defaultPostRequirement applies to rp quests that define no threshold.
func NewRegistry(defaultPostRequirement int) *Registry {
	return &Registry{
		handlers: map[domain.QuestType]TypeHandler{
			domain.QuestTypeRP:          rpHandler{defaultPostRequirement: defaultPostRequirement},
			domain.QuestTypeArt:         artHandler{},
			domain.QuestTypeWriting:     writingHandler{},
			domain.QuestTypeArtWriting:  artWritingHandler{},
			domain.QuestTypeInteractive: interactiveHandler{},
		},
		fallback: fallbackHandler{},
	}
}

// Handler returns the handler for the given quest type, or the fallback
func (r *Registry) Handler(t domain.QuestType) TypeHandler {
	if h, ok := r.handlers[t]; ok {
		return h
	}
	return r.fallback
}

// rpHandler completes when the participant reaches the quest's post count
type rpHandler struct {
	defaultPostRequirement int
}

func (h rpHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	return p.PostCount >= h.requirement(q)
}

func (h rpHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%d/%d posts", p.PostCount, h.requirement(q))
}

func (h rpHandler) Title() string { return "RP Quest Completed!" }

func (h rpHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s reached %d posts in **%s**.", p.CharacterName, p.PostCount, q.Title)
}

func (h rpHandler) requirement(q *domain.Quest) int {
	if q.PostRequirement > 0 {
		return q.PostRequirement
	}
	return h.defaultPostRequirement
}

// artHandler completes on the first approved art submission
type artHandler struct{}

func (artHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	return p.HasApproved(domain.SubmissionTypeArt)
}

func (artHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%d approved art submission(s)", p.CountApproved(domain.SubmissionTypeArt))
}

func (artHandler) Title() string { return "Art Quest Completed!" }

func (artHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s submitted approved art for **%s**.", p.CharacterName, q.Title)
}

// writingHandler completes on the first approved writing submission
type writingHandler struct{}

func (writingHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	return p.HasApproved(domain.SubmissionTypeWriting)
}

func (writingHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%d approved writing submission(s)", p.CountApproved(domain.SubmissionTypeWriting))
}

func (writingHandler) Title() string { return "Writing Quest Completed!" }

func (writingHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s submitted approved writing for **%s**.", p.CharacterName, q.Title)
}

// artWritingHandler completes per the quest's mode: "either" accepts one
// approved submission of either type, "both" (the default) requires one
// approved submission of each
type artWritingHandler struct{}

func (artWritingHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	hasArt := p.HasApproved(domain.SubmissionTypeArt)
	hasWriting := p.HasApproved(domain.SubmissionTypeWriting)
	if q.ArtWritingMode == domain.ArtWritingModeEither {
		return hasArt || hasWriting
	}
	return hasArt && hasWriting
}

func (artWritingHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("art: %d approved, writing: %d approved",
		p.CountApproved(domain.SubmissionTypeArt), p.CountApproved(domain.SubmissionTypeWriting))
}

func (artWritingHandler) Title() string { return "Art/Writing Quest Completed!" }

func (artWritingHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s completed the creative work for **%s**.", p.CharacterName, q.Title)
}

// interactiveHandler never gates reward eligibility at the individual
// level; roll thresholds surface only in the progress descriptor
type interactiveHandler struct{}

func (interactiveHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	return true
}

func (interactiveHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	if q.RequiredRolls > 0 {
		return fmt.Sprintf("%d/%d successful rolls", p.SuccessfulRolls, q.RequiredRolls)
	}
	return fmt.Sprintf("%d successful rolls", p.SuccessfulRolls)
}

func (interactiveHandler) Title() string { return "Interactive Quest Completed!" }

func (interactiveHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s took part in **%s**.", p.CharacterName, q.Title)
}

// fallbackHandler keeps unregistered quest types safe to process
type fallbackHandler struct{}

func (fallbackHandler) CheckCompletion(q *domain.Quest, p *domain.Participant) bool {
	return true
}

func (fallbackHandler) ProgressDescriptor(q *domain.Quest, p *domain.Participant) string {
	return "✅ Completed"
}

func (fallbackHandler) Title() string { return "Quest Completed!" }

func (fallbackHandler) Description(q *domain.Quest, p *domain.Participant) string {
	return fmt.Sprintf("%s completed the quest.", p.CharacterName)
}
