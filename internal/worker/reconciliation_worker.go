package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/quest"
)

// ReconciliationWorker runs the monthly reconciliation sweep on a cron
// schedule. Runs never overlap: a sweep still in flight when the next
// tick fires causes that tick to be skipped.
type ReconciliationWorker struct {
	questService quest.Service
	cron         *cron.Cron
	running      bool
	mu           sync.Mutex
	wg           sync.WaitGroup
}

// NewReconciliationWorker schedules the sweep with the given cron
// expression (standard five-field syntax, e.g. "0 0 1 * *" for midnight
// on the first of each month)
func NewReconciliationWorker(questService quest.Service, cronExpr string) (*ReconciliationWorker, error) {
	w := &ReconciliationWorker{
		questService: questService,
		cron:         cron.New(),
	}

	if _, err := w.cron.AddFunc(cronExpr, w.runSweep); err != nil {
		return nil, fmt.Errorf("invalid reconciliation schedule %q: %w", cronExpr, err)
	}
	return w, nil
}

// Start begins the cron scheduler
func (w *ReconciliationWorker) Start() {
	w.cron.Start()
}

func (w *ReconciliationWorker) runSweep() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		logger.FromContext(context.Background()).Warn("Skipping reconciliation tick, previous sweep still running")
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	defer w.wg.Done()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	ctx := logger.WithSweepID(context.Background(), logger.GenerateSweepID())
	log := logger.FromContext(ctx)

	log.Info("Starting monthly reconciliation sweep")
	report, err := w.questService.RunMonthlyReconciliation(ctx)
	if err != nil {
		log.Error("Monthly reconciliation sweep failed", "error", err)
		return
	}

	log.Info("Monthly reconciliation sweep finished",
		"quests_scanned", report.QuestsScanned,
		"rewarded", report.Rewarded,
		"already_rewarded", report.AlreadyRewarded,
		"promoted", report.Promoted,
		"failed", report.QuestsFailed)
}

// Shutdown stops the scheduler and waits for an in-flight sweep
func (w *ReconciliationWorker) Shutdown(ctx context.Context) error {
	stopCtx := w.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-stopCtx.Done()
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
