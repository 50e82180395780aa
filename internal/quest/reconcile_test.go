package quest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roothaven/RootsBot_Go/internal/domain"
)

func TestRunMonthlyReconciliation_PaysMissedRewards(t *testing.T) {
	f := newServiceFixture()

	rewardedAt := time.Now().UTC()
	paid := &domain.Participant{
		UserID:          "u1",
		CharacterName:   "Mira",
		Progress:        domain.ProgressRewarded,
		TokensEarned:    100,
		RewardProcessed: true,
		RewardedAt:      &rewardedAt,
	}
	missed := &domain.Participant{
		UserID:        "u2",
		CharacterName: "Orin",
		Progress:      domain.ProgressCompleted,
		PostCount:     12,
	}
	quest := rpQuest(paid, missed)
	quest.Status = domain.QuestStatusCompleted

	f.quests.On("GetQuestsByStatus", mock.Anything, domain.QuestStatusCompleted).
		Return([]*domain.Quest{quest}, nil)
	f.characters.On("FindCharacter", mock.Anything, "u1", "Mira").
		Return(&domain.Character{Name: "Mira", Job: "merchant"}, nil)
	f.characters.On("FindCharacter", mock.Anything, "u2", "Orin").
		Return(&domain.Character{Name: "Orin", Job: "merchant"}, nil)
	f.ledger.On("CreditTokens", mock.Anything, "u2", 100, mock.Anything).
		Return(&domain.TokenTransfer{BalanceAfter: 100}, nil)
	f.ledger.On("RecordCompletion", mock.Anything, "u2", mock.Anything).Return(nil)
	f.quests.On("SaveQuest", mock.Anything, quest).Return(nil)

	report, err := f.service.RunMonthlyReconciliation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.QuestsScanned)
	assert.Equal(t, 0, report.QuestsFailed)
	assert.Equal(t, 1, report.Rewarded)
	assert.Equal(t, 1, report.AlreadyRewarded)

	assert.Equal(t, domain.ProgressRewarded, missed.Progress)
	assert.Equal(t, domain.RewardSourceMonthly, missed.RewardSource)
	assert.Equal(t, 100, paid.TokensEarned, "already paid participant is untouched")

	// Exactly one credit call in the whole sweep
	f.ledger.AssertNumberOfCalls(t, "CreditTokens", 1)
	f.ledger.AssertExpectations(t)
}

func TestRunMonthlyReconciliation_PromotesLateApprovedWork(t *testing.T) {
	f := newServiceFixture()

	late := &domain.Participant{
		UserID:        "u1",
		CharacterName: "Mira",
		Progress:      domain.ProgressActive,
	}
	quest := &domain.Quest{
		ID:               "q1",
		Title:            "Gallery Opening",
		QuestType:        domain.QuestTypeArt,
		RewardExpression: "flat:50",
		Status:           domain.QuestStatusCompleted,
		Participants:     []*domain.Participant{late},
	}

	lateWork := domain.Submission{
		Type:       domain.SubmissionTypeArt,
		Approved:   true,
		ApprovedAt: time.Now().UTC(),
		SourceRef:  "https://example.test/art/9",
	}

	f.quests.On("GetQuestsByStatus", mock.Anything, domain.QuestStatusCompleted).
		Return([]*domain.Quest{quest}, nil)
	f.characters.On("FindCharacter", mock.Anything, "u1", "Mira").
		Return(&domain.Character{Name: "Mira", Job: "merchant"}, nil)
	f.submissions.On("FindApproved", mock.Anything, "q1", "u1").
		Return([]domain.Submission{lateWork}, nil)
	f.ledger.On("RecordCompletion", mock.Anything, "u1", mock.Anything).Return(nil)
	f.ledger.On("CreditTokens", mock.Anything, "u1", 50, mock.Anything).
		Return(&domain.TokenTransfer{BalanceAfter: 50}, nil)
	f.quests.On("SaveQuest", mock.Anything, quest).Return(nil)

	report, err := f.service.RunMonthlyReconciliation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Promoted)
	assert.Equal(t, 1, report.Rewarded)
	assert.Equal(t, domain.ProgressRewarded, late.Progress)
	assert.Equal(t, domain.RewardSourceMonthly, late.RewardSource)
	f.ledger.AssertExpectations(t)
}

func TestRunMonthlyReconciliation_QuestFailureDoesNotAbortSweep(t *testing.T) {
	f := newServiceFixture()

	broken := rpQuest(&domain.Participant{
		UserID: "u1", CharacterName: "Mira",
		Progress: domain.ProgressCompleted, PostCount: 12,
	})
	broken.Status = domain.QuestStatusCompleted

	healthy := &domain.Quest{
		ID:               "q2",
		Title:            "Harvest Watch",
		QuestType:        domain.QuestTypeRP,
		RewardExpression: "flat:40",
		PostRequirement:  5,
		Status:           domain.QuestStatusCompleted,
		Participants: []*domain.Participant{{
			UserID: "u2", CharacterName: "Orin",
			Progress: domain.ProgressCompleted, PostCount: 7,
		}},
	}

	f.quests.On("GetQuestsByStatus", mock.Anything, domain.QuestStatusCompleted).
		Return([]*domain.Quest{broken, healthy}, nil)
	f.characters.On("FindCharacter", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Character{Job: "merchant"}, nil)
	f.ledger.On("CreditTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.TokenTransfer{}, nil)
	f.ledger.On("RecordCompletion", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.quests.On("SaveQuest", mock.Anything, broken).Return(errors.New("save failed"))
	f.quests.On("SaveQuest", mock.Anything, healthy).Return(nil)

	report, err := f.service.RunMonthlyReconciliation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.QuestsScanned)
	assert.Equal(t, 1, report.QuestsFailed)
	assert.Equal(t, 2, report.Rewarded)
	assert.Len(t, report.Errors, 1)
}

func TestRunMonthlyReconciliation_NothingToDo(t *testing.T) {
	f := newServiceFixture()

	f.quests.On("GetQuestsByStatus", mock.Anything, domain.QuestStatusCompleted).
		Return([]*domain.Quest{}, nil)

	report, err := f.service.RunMonthlyReconciliation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.QuestsScanned)
	assert.Equal(t, 0, report.Rewarded)
}
