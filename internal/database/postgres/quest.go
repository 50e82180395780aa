package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

// QuestRepository implements the quest repository for PostgreSQL.
// Participants are stored as a JSONB document on the quest row, so one
// SaveQuest call persists the whole quest including idempotency markers.
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

const questColumns = `quest_id, title, quest_type, reward_expression, token_reward,
	item_reward, item_reward_qty, item_rewards, post_requirement, required_rolls,
	art_writing_mode, status, completion_processed, participants, posted_at, updated_at`

// FindQuest loads a quest with its participant document
func (r *QuestRepository) FindQuest(ctx context.Context, questID string) (*domain.Quest, error) {
	query := fmt.Sprintf(`SELECT %s FROM quests WHERE quest_id = $1`, questColumns)

	q, err := scanQuest(r.db.QueryRow(ctx, query, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
		}
		return nil, fmt.Errorf("failed to query quest: %w", err)
	}
	return q, nil
}

// SaveQuest persists the quest and its full participant document
func (r *QuestRepository) SaveQuest(ctx context.Context, quest *domain.Quest) error {
	participants, err := json.Marshal(quest.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}
	itemRewards, err := json.Marshal(quest.ItemRewards)
	if err != nil {
		return fmt.Errorf("failed to marshal item rewards: %w", err)
	}

	query := `
		UPDATE quests
		SET status = $1, completion_processed = $2, participants = $3,
		    item_rewards = $4, updated_at = NOW()
		WHERE quest_id = $5
	`
	tag, err := r.db.Exec(ctx, query,
		quest.Status, quest.CompletionProcessed, participants, itemRewards, quest.ID)
	if err != nil {
		return fmt.Errorf("failed to save quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrQuestNotFound, quest.ID)
	}
	return nil
}

// GetQuestsByStatus returns all quests in the given lifecycle state
func (r *QuestRepository) GetQuestsByStatus(ctx context.Context, status domain.QuestStatus) ([]*domain.Quest, error) {
	query := fmt.Sprintf(`SELECT %s FROM quests WHERE status = $1 ORDER BY posted_at`, questColumns)

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query quests: %w", err)
	}
	defer rows.Close()

	var quests []*domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		q                domain.Quest
		participantsJSON []byte
		itemRewardsJSON  []byte
		postedAt         time.Time
		updatedAt        time.Time
	)

	err := row.Scan(
		&q.ID, &q.Title, &q.QuestType, &q.RewardExpression, &q.TokenReward,
		&q.ItemReward, &q.ItemRewardQty, &itemRewardsJSON, &q.PostRequirement,
		&q.RequiredRolls, &q.ArtWritingMode, &q.Status, &q.CompletionProcessed,
		&participantsJSON, &postedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(participantsJSON, &q.Participants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
	}
	if len(itemRewardsJSON) > 0 {
		if err := json.Unmarshal(itemRewardsJSON, &q.ItemRewards); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item rewards: %w", err)
		}
	}

	q.PostedAt = postedAt
	q.UpdatedAt = updatedAt
	return &q, nil
}
