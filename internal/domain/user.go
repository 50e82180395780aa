package domain

import "time"

// User is the ledger record for a registered user: running token balance
// plus the permanent completion history other tooling reconciles against
type User struct {
	ID          string            `json:"user_id"`
	Username    string            `json:"username"`
	Tokens      int               `json:"tokens"`
	Completions []CompletionEntry `json:"completions,omitempty"`
}

// CompletionEntry is one row of a user's quest completion history.
// Exactly one entry exists per quest id; it is created with zero reward
// values at completion time and updated in place once the reward lands.
type CompletionEntry struct {
	QuestID      string       `json:"quest_id"`
	QuestType    QuestType    `json:"quest_type"`
	QuestTitle   string       `json:"quest_title"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	RewardedAt   *time.Time   `json:"rewarded_at,omitempty"`
	TokensEarned int          `json:"tokens_earned"`
	ItemsEarned  []ItemGrant  `json:"items_earned,omitempty"`
	RewardSource RewardSource `json:"reward_source"`
}

// Completion returns the history entry for the given quest, or nil
func (u *User) Completion(questID string) *CompletionEntry {
	for i := range u.Completions {
		if u.Completions[i].QuestID == questID {
			return &u.Completions[i]
		}
	}
	return nil
}

// TokenTransfer reports the balances around a single ledger credit
type TokenTransfer struct {
	BalanceBefore int `json:"balance_before"`
	BalanceAfter  int `json:"balance_after"`
}

// TransactionMeta carries audit context for a token credit
type TransactionMeta struct {
	QuestID    string `json:"quest_id,omitempty"`
	QuestTitle string `json:"quest_title,omitempty"`
	Reason     string `json:"reason"`
}
