package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/reward"
)

const (
	embedColorReward  = 0x57F287
	embedColorSummary = 0x5865F2
)

// Discord posts reward announcements as embeds to a configured channel
type Discord struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscord opens a Discord session for the given bot token
func NewDiscord(token, channelID string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open discord session: %w", err)
	}
	return &Discord{session: session, channelID: channelID}, nil
}

// Close shuts the underlying Discord session down
func (d *Discord) Close() error {
	return d.session.Close()
}

// NotifyRewarded announces a participant's reward
func (d *Discord) NotifyRewarded(ctx context.Context, q *domain.Quest, p *domain.Participant, result *reward.Result) error {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Character", Value: p.CharacterName, Inline: true},
		{Name: "Tokens", Value: fmt.Sprintf("%d", result.TokensAdded), Inline: true},
	}

	if result.Breakdown.EntertainerBonus > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Breakdown",
			Value:  fmt.Sprintf("base %d + entertainer bonus %d", result.Breakdown.Base, result.Breakdown.EntertainerBonus),
			Inline: false,
		})
	}

	if len(result.ItemsDistributed) > 0 {
		items := make([]string, len(result.ItemsDistributed))
		for i, g := range result.ItemsDistributed {
			items[i] = fmt.Sprintf("%s x%d", g.Name, g.Quantity)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Items",
			Value:  strings.Join(items, "\n"),
			Inline: false,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Quest Reward: %s", q.Title),
		Description: fmt.Sprintf("<@%s> has been rewarded.", p.UserID),
		Color:       embedColorReward,
		Fields:      fields,
	}

	if _, err := d.session.ChannelMessageSendEmbed(d.channelID, embed); err != nil {
		logger.FromContext(ctx).Error("Failed to send reward notification",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
		return err
	}
	return nil
}

// NotifyQuestSummary announces a quest reaching its terminal state
func (d *Discord) NotifyQuestSummary(ctx context.Context, q *domain.Quest, reason string) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Quest Complete: %s", q.Title),
		Description: reason,
		Color:       embedColorSummary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Participants", Value: fmt.Sprintf("%d", len(q.Participants)), Inline: true},
			{Name: "Type", Value: string(q.QuestType), Inline: true},
		},
	}

	if _, err := d.session.ChannelMessageSendEmbed(d.channelID, embed); err != nil {
		logger.FromContext(ctx).Error("Failed to send quest summary",
			"quest_id", q.ID, "error", err)
		return err
	}
	return nil
}
