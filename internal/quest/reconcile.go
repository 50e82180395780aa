package quest

import (
	"context"
	"fmt"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/metrics"
)

// ReconciliationReport summarizes one batch sweep
type ReconciliationReport struct {
	QuestsScanned   int      `json:"quests_scanned"`
	QuestsFailed    int      `json:"quests_failed"`
	Rewarded        int      `json:"rewarded"`
	AlreadyRewarded int      `json:"already_rewarded"`
	Promoted        int      `json:"promoted"`
	Errors          []string `json:"errors,omitempty"`
}

// RunMonthlyReconciliation re-examines every quest in terminal state and
// re-runs the per-participant pipeline, relying entirely on the reward
// status classifier to skip anyone already paid. A failure in one quest
// never aborts the sweep.
func (s *service) RunMonthlyReconciliation(ctx context.Context) (*ReconciliationReport, error) {
	log := logger.FromContext(ctx)
	metrics.ReconciliationRuns.Inc()

	quests, err := s.quests.GetQuestsByStatus(ctx, domain.QuestStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed quests: %w", err)
	}

	report := &ReconciliationReport{}
	for _, q := range quests {
		report.QuestsScanned++
		if err := s.reconcileQuest(ctx, q, report); err != nil {
			report.QuestsFailed++
			report.Errors = append(report.Errors, fmt.Sprintf("quest %s: %v", q.ID, err))
			log.Error("Quest reconciliation failed", "quest_id", q.ID, "error", err)
		}
	}

	log.Info("Monthly reconciliation completed",
		"quests_scanned", report.QuestsScanned,
		"rewarded", report.Rewarded,
		"already_rewarded", report.AlreadyRewarded,
		"promoted", report.Promoted,
		"failed", report.QuestsFailed)

	return report, nil
}

func (s *service) reconcileQuest(ctx context.Context, q *domain.Quest, report *ReconciliationReport) error {
	rctx := s.buildRewardContext(ctx, q)
	handler := s.registry.Handler(q.QuestType)

	// Late-approved work first: promote any still-active participant whose
	// predicate now passes, recording the zero-reward safeguard entry
	// immediately so completion counts are correct even for participants
	// who never hit the immediate path
	for _, p := range q.Participants {
		if p.Progress != domain.ProgressActive {
			continue
		}
		if err := s.syncApprovedSubmissions(ctx, q, p); err != nil {
			logger.FromContext(ctx).Warn("Submission sync failed during reconciliation",
				"quest_id", q.ID, "user_id", p.UserID, "error", err)
		}
		if p.Progress == domain.ProgressActive && handler.CheckCompletion(q, p) {
			s.markCompleted(ctx, q, p)
		}
		if p.Progress == domain.ProgressCompleted {
			report.Promoted++
			metrics.ParticipantsPromoted.Inc()
		}
	}

	questReport := &CompletionReport{QuestID: q.ID}
	for _, p := range q.Participants {
		s.processParticipant(ctx, q, p, rctx, domain.RewardSourceMonthly, questReport)
	}

	report.Rewarded += questReport.Rewarded
	report.AlreadyRewarded += questReport.AlreadyRewarded
	for _, e := range questReport.Errors {
		report.Errors = append(report.Errors, fmt.Sprintf("quest %s: %s", q.ID, e))
	}

	s.finalizeQuest(ctx, q, questReport)

	if err := s.quests.SaveQuest(ctx, q); err != nil {
		return fmt.Errorf("failed to persist quest: %w", err)
	}

	metrics.QuestsProcessed.WithLabelValues(string(domain.RewardSourceMonthly)).Inc()
	return nil
}
