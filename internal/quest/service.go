package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roothaven/RootsBot_Go/internal/config"
	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/metrics"
	"github.com/roothaven/RootsBot_Go/internal/notifier"
	"github.com/roothaven/RootsBot_Go/internal/repository"
	"github.com/roothaven/RootsBot_Go/internal/reward"
)

type Service interface {
	// ProcessQuestCompletion is the immediate, event-driven entry point:
	// it evaluates every participant of one quest and distributes any
	// rewards that are due
	ProcessQuestCompletion(ctx context.Context, questID string) (*CompletionReport, error)

	// RunMonthlyReconciliation sweeps all completed quests and pays out
	// anything the immediate path missed
	RunMonthlyReconciliation(ctx context.Context) (*ReconciliationReport, error)

	// GetParticipantRewardStatus classifies a single participant
	GetParticipantRewardStatus(p *domain.Participant) RewardStatus

	// ValidateQuestRewardStatus dumps every participant's classification
	// for diagnostics
	ValidateQuestRewardStatus(ctx context.Context, questID string) (*RewardStatusReport, error)
}

type service struct {
	quests      repository.Quest
	ledger      repository.Ledger
	characters  repository.Character
	submissions repository.Submission
	distributor *reward.Distributor
	registry    *Registry
	notifier    notifier.Notifier
	cfg         config.Rewards
}

func NewService(
	quests repository.Quest,
	ledger repository.Ledger,
	characters repository.Character,
	submissions repository.Submission,
	distributor *reward.Distributor,
	n notifier.Notifier,
	cfg config.Rewards,
) Service {
	return &service{
		quests:      quests,
		ledger:      ledger,
		characters:  characters,
		submissions: submissions,
		distributor: distributor,
		registry:    NewRegistry(cfg.DefaultPostRequirement),
		notifier:    n,
		cfg:         cfg,
	}
}

// CompletionReport summarizes one quest completion run
type CompletionReport struct {
	QuestID         string   `json:"quest_id"`
	Processed       int      `json:"processed"`
	Rewarded        int      `json:"rewarded"`
	AlreadyRewarded int      `json:"already_rewarded"`
	NotCompleted    int      `json:"not_completed"`
	QuestCompleted  bool     `json:"quest_completed"`
	Errors          []string `json:"errors,omitempty"`
}

func (s *service) ProcessQuestCompletion(ctx context.Context, questID string) (*CompletionReport, error) {
	log := logger.FromContext(ctx)

	q, err := s.quests.FindQuest(ctx, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest %s: %w", questID, err)
	}

	// A quest may already be marked completed by an upstream caller
	// before rewards ran; both states are accepted here
	if q.Status != domain.QuestStatusActive && q.Status != domain.QuestStatusCompleted {
		return nil, fmt.Errorf("%w: quest %s has status %q", domain.ErrQuestNotEligible, questID, q.Status)
	}

	rctx := s.buildRewardContext(ctx, q)

	if q.RequiresCreativeWork() {
		for _, p := range q.Participants {
			if err := s.syncApprovedSubmissions(ctx, q, p); err != nil {
				log.Warn("Submission sync failed, continuing with local record",
					"quest_id", q.ID, "user_id", p.UserID, "error", err)
			}
		}
	}

	report := &CompletionReport{QuestID: q.ID}
	for _, p := range q.Participants {
		s.processParticipant(ctx, q, p, rctx, domain.RewardSourceImmediate, report)
	}

	s.finalizeQuest(ctx, q, report)

	if err := s.quests.SaveQuest(ctx, q); err != nil {
		return report, fmt.Errorf("failed to persist quest %s: %w", q.ID, err)
	}

	metrics.QuestsProcessed.WithLabelValues(string(domain.RewardSourceImmediate)).Inc()
	log.Info("Quest completion processed",
		"quest_id", q.ID, "rewarded", report.Rewarded,
		"already_rewarded", report.AlreadyRewarded, "errors", len(report.Errors))

	return report, nil
}

// processParticipant runs the shared per-participant pipeline:
// bridge → evaluator → classifier → distributor → safeguard-record.
// Failures are captured on the report; one participant's failure never
// aborts processing of the rest.
func (s *service) processParticipant(ctx context.Context, q *domain.Quest, p *domain.Participant, rctx *reward.Context, source domain.RewardSource, report *CompletionReport) {
	log := logger.FromContext(ctx)
	report.Processed++

	now := time.Now().UTC()
	p.LastRewardCheck = &now

	if ClassifyRewardStatus(p) == StatusAlreadyRewarded {
		report.AlreadyRewarded++
		metrics.ReconciliationSkips.Inc()
		return
	}

	if err := s.evaluateCompletion(ctx, q, p); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: evaluation failed: %v", p.UserID, err))
		log.Error("Completion evaluation failed",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
		return
	}

	// Re-classify immediately before distributing; the classifier is the
	// only thing standing between the two trigger paths and a double credit
	if ClassifyRewardStatus(p) != StatusNeedsRewarding {
		report.NotCompleted++
		return
	}

	result := s.distributor.Distribute(ctx, q, p, rctx)
	if !result.Success {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: distribution failed: %v", p.UserID, result.Errors))
		log.Error("Reward distribution failed",
			"quest_id", q.ID, "user_id", p.UserID, "errors", result.Errors)
		return
	}

	s.markRewarded(ctx, q, p, result, source)
	report.Rewarded++

	for _, e := range result.Errors {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", p.UserID, e))
	}

	if err := s.notifier.NotifyRewarded(ctx, q, p, result); err != nil {
		log.Warn("Reward notification failed",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
	}
}

// markRewarded flips the idempotency markers and writes the final reward
// values into both the participant and the ledger history
func (s *service) markRewarded(ctx context.Context, q *domain.Quest, p *domain.Participant, result *reward.Result, source domain.RewardSource) {
	now := time.Now().UTC()

	p.Progress = domain.ProgressRewarded
	p.RewardProcessed = true
	p.RewardSource = source
	p.TokensEarned = result.TokensAdded
	p.ItemsEarned = result.ItemsDistributed
	p.RewardedAt = &now
	if p.CompletedAt == nil {
		p.CompletedAt = &now
	}

	entry := domain.CompletionEntry{
		QuestID:      q.ID,
		QuestType:    q.QuestType,
		QuestTitle:   q.Title,
		CompletedAt:  p.CompletedAt,
		RewardedAt:   p.RewardedAt,
		TokensEarned: result.TokensAdded,
		ItemsEarned:  result.ItemsDistributed,
		RewardSource: source,
	}
	if err := s.ledger.RecordCompletion(ctx, p.UserID, entry); err != nil {
		// The safeguard entry from completion time already exists; the
		// participant record carries the reward values for later repair
		logger.FromContext(ctx).Error("Failed to update ledger completion entry",
			"quest_id", q.ID, "user_id", p.UserID, "error", err)
	}
}

// finalizeQuest transitions the quest to completed once every participant
// has resolved. The CompletionProcessed flag keeps the terminal-transition
// logic from running twice.
func (s *service) finalizeQuest(ctx context.Context, q *domain.Quest, report *CompletionReport) {
	if q.CompletionProcessed {
		report.QuestCompleted = q.Status == domain.QuestStatusCompleted
		return
	}

	for _, p := range q.Participants {
		if p.Progress != domain.ProgressRewarded &&
			p.Progress != domain.ProgressFailed &&
			p.Progress != domain.ProgressDisqualified {
			return
		}
	}

	q.Status = domain.QuestStatusCompleted
	q.CompletionProcessed = true
	q.UpdatedAt = time.Now().UTC()
	report.QuestCompleted = true

	if err := s.notifier.NotifyQuestSummary(ctx, q, "All participants have been rewarded."); err != nil {
		logger.FromContext(ctx).Warn("Quest summary notification failed",
			"quest_id", q.ID, "error", err)
	}
}

func (s *service) GetParticipantRewardStatus(p *domain.Participant) RewardStatus {
	return ClassifyRewardStatus(p)
}

// RewardStatusReport is the diagnostic dump of a quest's reward state
type RewardStatusReport struct {
	QuestID      string              `json:"quest_id"`
	QuestStatus  domain.QuestStatus  `json:"quest_status"`
	Participants []ParticipantStatus `json:"participants"`
}

// ParticipantStatus is one participant's classification in the dump
type ParticipantStatus struct {
	UserID          string               `json:"user_id"`
	CharacterName   string               `json:"character_name"`
	Progress        domain.ProgressState `json:"progress"`
	Status          RewardStatus         `json:"reward_status"`
	ProgressDisplay string               `json:"progress_display"`
	TokensEarned    int                  `json:"tokens_earned"`
	RewardProcessed bool                 `json:"reward_processed"`
	RewardSource    domain.RewardSource  `json:"reward_source,omitempty"`
}

func (s *service) ValidateQuestRewardStatus(ctx context.Context, questID string) (*RewardStatusReport, error) {
	q, err := s.quests.FindQuest(ctx, questID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load quest %s: %w", questID, err)
	}

	report := &RewardStatusReport{
		QuestID:      q.ID,
		QuestStatus:  q.Status,
		Participants: make([]ParticipantStatus, 0, len(q.Participants)),
	}

	handler := s.registry.Handler(q.QuestType)
	for _, p := range q.Participants {
		report.Participants = append(report.Participants, ParticipantStatus{
			UserID:          p.UserID,
			CharacterName:   p.CharacterName,
			Progress:        p.Progress,
			Status:          ClassifyRewardStatus(p),
			ProgressDisplay: handler.ProgressDescriptor(q, p),
			TokensEarned:    p.TokensEarned,
			RewardProcessed: p.RewardProcessed,
			RewardSource:    p.RewardSource,
		})
	}

	return report, nil
}
