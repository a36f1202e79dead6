package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProgressCalculator answers what a target's cached progress should be,
// recomputed from source orders. The bool result is false for target
// types that have no order-based definition (Visits, NewCustomers,
// Quotes, Conversions); those are left untouched by callers.
type ProgressCalculator interface {
	ComputeProgress(ctx context.Context, target *SalesTarget) (decimal.Decimal, bool, error)
}
