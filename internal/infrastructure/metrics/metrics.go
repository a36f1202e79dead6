package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TargetMetrics holds the reconciliation metrics. A nil receiver is a
// no-op so usecases can run without a registry in tests.
type TargetMetrics struct {
	ReconcileRunsTotal       prometheus.Counter
	TargetsUpdatedTotal      prometheus.Counter
	TargetsUnchangedTotal    prometheus.Counter
	TargetsFailedTotal       prometheus.Counter
	TargetsCompletedTotal    prometheus.CounterVec
	ReconcileRunDuration     prometheus.Histogram
	ApprovalEventsTotal      prometheus.Counter
	ApprovalEventErrorsTotal prometheus.Counter
}

func NewTargetMetrics() *TargetMetrics {
	return &TargetMetrics{
		ReconcileRunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "target_reconcile_runs_total",
			Help: "Number of reconciliation runs",
		}),

		TargetsUpdatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "target_reconcile_updated_total",
			Help: "Targets whose cached progress was rewritten",
		}),

		TargetsUnchangedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "target_reconcile_unchanged_total",
			Help: "Targets whose cached progress already matched",
		}),

		TargetsFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "target_reconcile_failed_total",
			Help: "Targets skipped due to data or repository errors",
		}),

		TargetsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "targets_completed_total",
				Help: "Targets transitioned to Completed",
			},
			[]string{"target_type"},
		),

		ReconcileRunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "target_reconcile_run_duration_seconds",
			Help:    "Duration of a full reconciliation run",
			Buckets: prometheus.DefBuckets,
		}),

		ApprovalEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "order_approval_events_total",
			Help: "Consumed order approval events",
		}),

		ApprovalEventErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "order_approval_event_errors_total",
			Help: "Approval events that failed to process",
		}),
	}
}

func (m *TargetMetrics) RecordReconcileRun(updated, unchanged, failed int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ReconcileRunsTotal.Inc()
	m.TargetsUpdatedTotal.Add(float64(updated))
	m.TargetsUnchangedTotal.Add(float64(unchanged))
	m.TargetsFailedTotal.Add(float64(failed))
	m.ReconcileRunDuration.Observe(elapsed.Seconds())
}

func (m *TargetMetrics) RecordTargetCompleted(targetType string) {
	if m == nil {
		return
	}
	m.TargetsCompletedTotal.WithLabelValues(targetType).Inc()
}

func (m *TargetMetrics) RecordApprovalEvent(failed bool) {
	if m == nil {
		return
	}
	m.ApprovalEventsTotal.Inc()
	if failed {
		m.ApprovalEventErrorsTotal.Inc()
	}
}
