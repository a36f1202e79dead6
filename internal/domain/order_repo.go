package domain

import (
	"context"
	"time"
)

// EligibleOrdersFilter selects the orders that may count toward one
// target. When ApprovalAware is set the repository must match approved
// orders by approved_at and unapproved ones by order_date, not a single
// date column.
type EligibleOrdersFilter struct {
	SalesPersonID string
	Statuses      []OrderStatus
	From          time.Time
	To            time.Time
	ApprovalAware bool
}

// OrderRepository is the read-only query surface over persisted sales
// orders. Writes happen in the main backend, never here.
type OrderRepository interface {
	FindEligibleOrders(ctx context.Context, filter EligibleOrdersFilter) ([]*SalesOrder, error)
}
