package domain

import "time"

// QuestType identifies which completion rules apply to a quest
type QuestType string

const (
	QuestTypeArt         QuestType = "art"
	QuestTypeWriting     QuestType = "writing"
	QuestTypeInteractive QuestType = "interactive"
	QuestTypeRP          QuestType = "rp"
	QuestTypeArtWriting  QuestType = "art_writing"
)

// QuestStatus represents the lifecycle state of a quest
type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// ArtWritingMode controls how art_writing quests combine the two submission types
type ArtWritingMode string

const (
	ArtWritingModeEither ArtWritingMode = "either"
	ArtWritingModeBoth   ArtWritingMode = "both" // default
)

// ItemReward is a single item grant defined on a quest
type ItemReward struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Quest represents a posted quest and its enrolled participants.
// Participants are kept in join order; lookup is by user ID.
type Quest struct {
	ID                  string         `json:"quest_id"`
	Title               string         `json:"title"`
	QuestType           QuestType      `json:"quest_type"`
	RewardExpression    string         `json:"reward_expression"` // e.g. "per_unit:50 unit:submission max:3"
	TokenReward         int            `json:"token_reward"`      // legacy flat amount, used when the expression yields zero
	ItemReward          *string        `json:"item_reward,omitempty"`
	ItemRewardQty       int            `json:"item_reward_qty,omitempty"`
	ItemRewards         []ItemReward   `json:"item_rewards,omitempty"`
	PostRequirement     int            `json:"post_requirement,omitempty"` // rp quests
	RequiredRolls       int            `json:"required_rolls,omitempty"`   // interactive quests
	ArtWritingMode      ArtWritingMode `json:"art_writing_mode,omitempty"`
	Status              QuestStatus    `json:"status"`
	CompletionProcessed bool           `json:"completion_processed"`
	Participants        []*Participant `json:"participants"`
	PostedAt            time.Time      `json:"posted_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Participant returns the enrolled participant for the given user, or nil
func (q *Quest) Participant(userID string) *Participant {
	for _, p := range q.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// RequiresCreativeWork reports whether the quest type is driven by
// approved art/writing submissions
func (q *Quest) RequiresCreativeWork() bool {
	switch q.QuestType {
	case QuestTypeArt, QuestTypeWriting, QuestTypeArtWriting:
		return true
	}
	return false
}

// ItemRewardList merges the structured item rewards with the legacy
// single item/quantity pair
func (q *Quest) ItemRewardList() []ItemReward {
	rewards := make([]ItemReward, 0, len(q.ItemRewards)+1)
	rewards = append(rewards, q.ItemRewards...)
	if q.ItemReward != nil && *q.ItemReward != "" {
		qty := q.ItemRewardQty
		if qty <= 0 {
			qty = 1
		}
		rewards = append(rewards, ItemReward{Name: *q.ItemReward, Quantity: qty})
	}
	return rewards
}
