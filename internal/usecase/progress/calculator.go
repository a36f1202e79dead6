package progress

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

// CountedOrderStatuses is the set of order statuses that count toward
// Orders and Revenue targets: the order is real and moving. Draft,
// Pending and Cancelled orders never count.
var CountedOrderStatuses = []domain.OrderStatus{
	domain.OrderStatusConfirmed,
	domain.OrderStatusProcessing,
	domain.OrderStatusDispatched,
	domain.OrderStatusDelivered,
}

// DefaultProgressCalculator recomputes a target's progress from source
// orders. Batch reconciliation and the approval-event path both go
// through it, so the eligibility rule lives in one place.
type DefaultProgressCalculator struct {
	OrderRepo domain.OrderRepository
	Loc       *time.Location
}

func NewDefaultProgressCalculator(orderRepo domain.OrderRepository, loc *time.Location) *DefaultProgressCalculator {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultProgressCalculator{OrderRepo: orderRepo, Loc: loc}
}

func (c *DefaultProgressCalculator) ComputeProgress(ctx context.Context, target *domain.SalesTarget) (decimal.Decimal, bool, error) {
	switch target.TargetType {
	case domain.TargetTypeOrders, domain.TargetTypeRevenue:
	default:
		// No order-based definition for this type
		return target.CurrentProgress, false, nil
	}

	from, to := target.Window(c.Loc)
	orders, err := c.OrderRepo.FindEligibleOrders(ctx, domain.EligibleOrdersFilter{
		SalesPersonID: target.SalesmanID,
		Statuses:      CountedOrderStatuses,
		From:          from,
		To:            to,
		ApprovalAware: true,
	})
	if err != nil {
		return decimal.Zero, true, err
	}

	var count int64
	total := decimal.Zero
	for _, order := range orders {
		if !EligibleInWindow(order, from, to) {
			continue
		}
		count++
		total = total.Add(order.GrandTotal)
	}

	if target.TargetType == domain.TargetTypeOrders {
		return decimal.NewFromInt(count), true, nil
	}
	return total, true, nil
}

// EligibleInWindow is the canonical window rule. Once an order has an
// approval timestamp that timestamp is the event time; orders without
// one fall back to their placement date. Repositories that express this
// in SQL must match this predicate exactly.
func EligibleInWindow(order *domain.SalesOrder, from, to time.Time) bool {
	if order.ApprovedAt == nil {
		return within(order.OrderDate, from, to)
	}
	return order.ApprovalStatus == domain.ApprovalApproved && within(*order.ApprovedAt, from, to)
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
