package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	publisher "github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/kafka"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/metrics"
)

// revenueEpsilon tolerates sub-cent rounding in stored Revenue
// progress; Orders counts are compared exactly.
var revenueEpsilon = decimal.NewFromFloat(0.01)

const computeRetryBackoff = 250 * time.Millisecond

type ReconcileUsecase interface {
	ReconcileAll(ctx context.Context, filter Filter) (*Report, error)
}

type TargetEventPublisher interface {
	PublishTarget(event publisher.TargetEvent) error
}

type DefaultReconcileUsecase struct {
	TargetRepo domain.TargetRepository
	Calculator domain.ProgressCalculator
	Publisher  TargetEventPublisher
	Metrics    *metrics.TargetMetrics
	Workers    int
	Loc        *time.Location
}

func NewDefaultReconcileUsecase(
	targetRepo domain.TargetRepository,
	calculator domain.ProgressCalculator,
	eventPublisher TargetEventPublisher,
	targetMetrics *metrics.TargetMetrics,
	workers int,
	loc *time.Location) *DefaultReconcileUsecase {

	if workers < 1 {
		workers = 1
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultReconcileUsecase{
		TargetRepo: targetRepo,
		Calculator: calculator,
		Publisher:  eventPublisher,
		Metrics:    targetMetrics,
		Workers:    workers,
		Loc:        loc,
	}
}

const (
	stateUpdated   = "updated"
	stateUnchanged = "unchanged"
	stateFailed    = "failed"
)

type outcome struct {
	targetID string
	state    string
	reason   string
}

// ReconcileAll recomputes currentProgress for every Active target
// matching the filter. Running it twice with no intervening order
// changes yields zero updates on the second run.
func (uc *DefaultReconcileUsecase) ReconcileAll(ctx context.Context, filter Filter) (*Report, error) {
	idGenerator, err := nanoid.Standard(12)
	if err != nil {
		return nil, err
	}
	report := &Report{RunID: idGenerator()}
	started := time.Now()

	targets, err := uc.TargetRepo.GetActiveTargets(ctx, filter.SalesmanID)
	if err != nil {
		return nil, fmt.Errorf("load active targets: %w", err)
	}

	results := make(chan outcome, len(targets))
	sem := make(chan struct{}, uc.Workers)

	dispatched := 0
	for _, target := range targets {
		// Cancellation is honored between targets: in-flight
		// computations finish, nothing new is started.
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		dispatched++
		go func(t *domain.SalesTarget) {
			defer func() { <-sem }()
			results <- uc.reconcileTarget(ctx, t)
		}(target)
	}

	for i := 0; i < dispatched; i++ {
		res := <-results
		switch res.state {
		case stateUpdated:
			report.Updated = append(report.Updated, res.targetID)
		case stateUnchanged:
			report.Unchanged = append(report.Unchanged, res.targetID)
		case stateFailed:
			report.Failed = append(report.Failed, TargetFailure{TargetID: res.targetID, Reason: res.reason})
		}
	}

	uc.Metrics.RecordReconcileRun(len(report.Updated), len(report.Unchanged), len(report.Failed), time.Since(started))
	slog.Info("reconciliation run finished",
		"run_id", report.RunID,
		"salesman_id", filter.SalesmanID,
		"updated", len(report.Updated),
		"unchanged", len(report.Unchanged),
		"failed", len(report.Failed),
	)

	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	return report, nil
}

func (uc *DefaultReconcileUsecase) reconcileTarget(ctx context.Context, target *domain.SalesTarget) outcome {
	if target.EndDate.Before(target.StartDate) {
		return outcome{target.ID, stateFailed, domain.ErrInvalidTargetWindow.Error()}
	}
	if target.SalesmanID == "" {
		return outcome{target.ID, stateFailed, domain.ErrSalesmanRequired.Error()}
	}

	computed, computable, err := uc.Calculator.ComputeProgress(ctx, target)
	if err != nil {
		// One retry with backoff for transient repository errors
		select {
		case <-ctx.Done():
			return outcome{target.ID, stateFailed, ctx.Err().Error()}
		case <-time.After(computeRetryBackoff):
		}
		computed, computable, err = uc.Calculator.ComputeProgress(ctx, target)
		if err != nil {
			slog.Error("progress compute failed", "target_id", target.ID, "error", err.Error())
			return outcome{target.ID, stateFailed, err.Error()}
		}
	}
	if !computable {
		return outcome{target.ID, stateUnchanged, ""}
	}

	// Re-read right before the compare-and-write so a concurrent
	// approval-driven update is not overwritten from a stale snapshot.
	fresh, err := uc.TargetRepo.GetTargetByID(ctx, target.ID)
	if err != nil {
		return outcome{target.ID, stateFailed, err.Error()}
	}
	if fresh.Status != domain.TargetStatusActive {
		return outcome{target.ID, stateUnchanged, ""}
	}
	if progressEqual(fresh.TargetType, fresh.CurrentProgress, computed) {
		return outcome{target.ID, stateUnchanged, ""}
	}

	fresh.ApplyProgress(computed, time.Now(), uc.Loc)
	if err := uc.TargetRepo.SaveProgress(ctx, fresh); err != nil {
		return outcome{target.ID, stateFailed, err.Error()}
	}

	if fresh.Status == domain.TargetStatusCompleted {
		uc.Metrics.RecordTargetCompleted(string(fresh.TargetType))
		uc.publishCompleted(fresh)
	}

	return outcome{target.ID, stateUpdated, ""}
}

func (uc *DefaultReconcileUsecase) publishCompleted(target *domain.SalesTarget) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.TargetEvent{
		TargetID:        target.ID,
		SalesmanID:      target.SalesmanID,
		TargetType:      string(target.TargetType),
		Status:          string(target.Status),
		CurrentProgress: target.CurrentProgress.String(),
		TargetValue:     target.TargetValue.String(),
	}
	if err := uc.Publisher.PublishTarget(event); err != nil {
		slog.Error("failed to publish TargetEvent:completed", "target_id", target.ID, "error", err.Error())
	}
}

func progressEqual(targetType domain.TargetType, stored, computed decimal.Decimal) bool {
	if targetType == domain.TargetTypeRevenue {
		return stored.Sub(computed).Abs().LessThan(revenueEpsilon)
	}
	return stored.Equal(computed)
}
