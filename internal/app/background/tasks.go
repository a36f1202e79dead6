package background

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	publisher "github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/kafka"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/metrics"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/reconcile"
)

const (
	approvalEventsTopic = "order-approval-events"
	consumerGroupID     = "target-service"

	expiredSweepInterval = 10 * time.Minute
)

type BackgroundTasks struct {
	ReconcileUsecase reconcile.ReconcileUsecase
	TargetUsecase    usecase.TargetUsecase
	Subscriber       domain.SubscriberPort
	Metrics          *metrics.TargetMetrics
	Interval         time.Duration
}

func NewBackgroundTasks(
	reconcileUC reconcile.ReconcileUsecase,
	targetUC usecase.TargetUsecase,
	subscriber domain.SubscriberPort,
	targetMetrics *metrics.TargetMetrics,
	interval time.Duration) *BackgroundTasks {

	return &BackgroundTasks{
		ReconcileUsecase: reconcileUC,
		TargetUsecase:    targetUC,
		Subscriber:       subscriber,
		Metrics:          targetMetrics,
		Interval:         interval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startScheduledReconcile(ctx)
	go bt.startExpiredTargetSweep(ctx)
	go bt.startApprovalEventConsumer(ctx)
}

func (bt *BackgroundTasks) startScheduledReconcile(ctx context.Context) {
	ticker := time.NewTicker(bt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.ReconcileUsecase.ReconcileAll(ctx, reconcile.Filter{}); err != nil {
				log.Printf("Scheduled reconcile error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startExpiredTargetSweep(ctx context.Context) {
	ticker := time.NewTicker(expiredSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.TargetUsecase.FailExpiredTargets(ctx); err != nil {
				log.Printf("Expired target sweep error: %v\n", err)
			}
		}
	}
}

// startApprovalEventConsumer is the order-driven path: an approval
// event re-reconciles just that salesman's active targets through the
// same calculator the batch uses.
func (bt *BackgroundTasks) startApprovalEventConsumer(ctx context.Context) {
	if bt.Subscriber == nil {
		return
	}

	msgs, err := bt.Subscriber.Subscribe(approvalEventsTopic, consumerGroupID)
	if err != nil {
		log.Printf("Failed to subscribe to %s: %v\n", approvalEventsTopic, err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			var event publisher.OrderApprovalEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("Malformed approval event: %v\n", err)
				bt.Metrics.RecordApprovalEvent(true)
				continue
			}
			if event.SalesPersonID == "" {
				bt.Metrics.RecordApprovalEvent(true)
				continue
			}

			_, err := bt.ReconcileUsecase.ReconcileAll(ctx, reconcile.Filter{SalesmanID: event.SalesPersonID})
			if err != nil {
				log.Printf("Approval-driven reconcile error for salesman %s: %v\n", event.SalesPersonID, err)
			}
			bt.Metrics.RecordApprovalEvent(err != nil)
		}
	}
}
