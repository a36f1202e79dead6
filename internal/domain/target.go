package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TargetType string

const (
	TargetTypeRevenue      TargetType = "Revenue"
	TargetTypeVisits       TargetType = "Visits"
	TargetTypeNewCustomers TargetType = "NewCustomers"
	TargetTypeQuotes       TargetType = "Quotes"
	TargetTypeConversions  TargetType = "Conversions"
	TargetTypeOrders       TargetType = "Orders"
)

type TargetPeriod string

const (
	PeriodDaily     TargetPeriod = "Daily"
	PeriodWeekly    TargetPeriod = "Weekly"
	PeriodMonthly   TargetPeriod = "Monthly"
	PeriodQuarterly TargetPeriod = "Quarterly"
	PeriodYearly    TargetPeriod = "Yearly"
)

type TargetStatus string

const (
	TargetStatusActive    TargetStatus = "Active"
	TargetStatusCompleted TargetStatus = "Completed"
	TargetStatusFailed    TargetStatus = "Failed"
	TargetStatusCancelled TargetStatus = "Cancelled"
)

// SalesTarget is a goal assigned to one salesman for an inclusive
// [StartDate, EndDate] window. Period is informational only.
type SalesTarget struct {
	ID              string
	SalesmanID      string
	TargetType      TargetType
	TargetValue     decimal.Decimal
	Period          TargetPeriod
	StartDate       time.Time
	EndDate         time.Time
	CurrentProgress decimal.Decimal
	Status          TargetStatus
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StartOfDay normalizes t to 00:00:00.000 in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	tl := t.In(loc)
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay normalizes t to 23:59:59.999 in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// Window returns the normalized inclusive window of the target.
func (t *SalesTarget) Window(loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(t.StartDate, loc), EndOfDay(t.EndDate, loc)
}

// ApplyProgress replaces the cached progress and re-derives the status.
// Cancelled targets are never touched.
func (t *SalesTarget) ApplyProgress(newProgress decimal.Decimal, now time.Time, loc *time.Location) {
	if t.Status == TargetStatusCancelled {
		return
	}
	t.CurrentProgress = newProgress
	t.RefreshStatus(now, loc)
}

// RefreshStatus applies the save-time status rule:
// progress >= value -> Completed (CompletedAt set once),
// window expired while Active -> Failed. Cancelled is sticky,
// Completed and Failed are terminal for this rule.
func (t *SalesTarget) RefreshStatus(now time.Time, loc *time.Location) {
	if t.Status == TargetStatusCancelled || t.Status == TargetStatusFailed {
		return
	}

	if t.CurrentProgress.GreaterThanOrEqual(t.TargetValue) {
		t.Status = TargetStatusCompleted
		if t.CompletedAt == nil {
			completed := now
			t.CompletedAt = &completed
		}
		return
	}

	if t.Status == TargetStatusActive && now.After(EndOfDay(t.EndDate, loc)) {
		t.Status = TargetStatusFailed
	}
}

// ProgressPercent reports completion as a percentage. A zero target
// value yields 0, not a division error.
func (t *SalesTarget) ProgressPercent() decimal.Decimal {
	if t.TargetValue.IsZero() {
		return decimal.Zero
	}
	return t.CurrentProgress.Div(t.TargetValue).Mul(decimal.NewFromInt(100))
}
