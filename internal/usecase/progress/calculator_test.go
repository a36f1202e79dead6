package progress

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

type fakeOrderRepo struct {
	orders []*domain.SalesOrder
	err    error
}

func (f *fakeOrderRepo) FindEligibleOrders(ctx context.Context, filter domain.EligibleOrdersFilter) ([]*domain.SalesOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.SalesOrder
	for _, order := range f.orders {
		if order.SalesPersonID != filter.SalesPersonID {
			continue
		}
		if len(filter.Statuses) > 0 && !statusIn(order.OrderStatus, filter.Statuses) {
			continue
		}
		if filter.ApprovalAware {
			if !EligibleInWindow(order, filter.From, filter.To) {
				continue
			}
		} else if order.OrderDate.Before(filter.From) || order.OrderDate.After(filter.To) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func statusIn(status domain.OrderStatus, set []domain.OrderStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func datetime(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func ordersTarget(salesman string, value int64, start, end string) *domain.SalesTarget {
	return &domain.SalesTarget{
		ID:          "t1",
		SalesmanID:  salesman,
		TargetType:  domain.TargetTypeOrders,
		TargetValue: decimal.NewFromInt(value),
		StartDate:   date(start),
		EndDate:     date(end),
		Status:      domain.TargetStatusActive,
	}
}

func TestComputeProgress_ApprovalPrecedence(t *testing.T) {
	// O1: approved in window. O2: never approved, placed in window.
	// O3: placed in window but approved after it; approval date
	// governs once it exists, so O3 must not count.
	repo := &fakeOrderRepo{orders: []*domain.SalesOrder{
		{ID: "O1", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate:      date("2023-12-20"),
			ApprovalStatus: domain.ApprovalApproved, ApprovedAt: ptr(date("2024-01-15"))},
		{ID: "O2", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate: date("2024-01-20")},
		{ID: "O3", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate:      date("2024-01-10"),
			ApprovalStatus: domain.ApprovalApproved, ApprovedAt: ptr(date("2024-02-01"))},
	}}

	calc := NewDefaultProgressCalculator(repo, time.UTC)
	got, computable, err := calc.ComputeProgress(context.Background(), ordersTarget("S", 3, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("ComputeProgress failed: %v", err)
	}
	if !computable {
		t.Fatal("Orders target should be computable")
	}
	if !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected progress 2, got %s", got)
	}
}

func TestComputeProgress_WindowInclusivity(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*domain.SalesOrder{
		// placed on the start date, late in the day, still eligible
		{ID: "early", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate: datetime("2024-01-01T23:50:00")},
		// placed on the end date, still eligible
		{ID: "late", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate: datetime("2024-01-31T08:00:00")},
		// one millisecond past end of the last day, not eligible
		{ID: "past", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed,
			OrderDate: date("2024-02-01")},
	}}

	calc := NewDefaultProgressCalculator(repo, time.UTC)
	got, _, err := calc.ComputeProgress(context.Background(), ordersTarget("S", 10, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("ComputeProgress failed: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected progress 2, got %s", got)
	}
}

func TestEligibleInWindow_Boundaries(t *testing.T) {
	from := domain.StartOfDay(date("2024-01-01"), time.UTC)
	to := domain.EndOfDay(date("2024-01-31"), time.UTC)

	onBoundary := &domain.SalesOrder{OrderDate: to}
	if !EligibleInWindow(onBoundary, from, to) {
		t.Error("order at 23:59:59.999 on the end date must be eligible")
	}

	pastBoundary := &domain.SalesOrder{OrderDate: to.Add(time.Millisecond)}
	if EligibleInWindow(pastBoundary, from, to) {
		t.Error("order one millisecond past the window must not be eligible")
	}

	approvedOutside := &domain.SalesOrder{
		OrderDate:      date("2024-01-10"),
		ApprovalStatus: domain.ApprovalApproved,
		ApprovedAt:     ptr(date("2024-02-05")),
	}
	if EligibleInWindow(approvedOutside, from, to) {
		t.Error("approved outside the window must not be eligible even if placed inside")
	}

	approvedOutside.ApprovedAt = nil
	if !EligibleInWindow(approvedOutside, from, to) {
		t.Error("with the approval timestamp cleared the order falls back to its placement date")
	}
}

func TestComputeProgress_RevenueSum(t *testing.T) {
	totals := []string{"100.10", "200.20", "49.70"}
	repo := &fakeOrderRepo{}
	for i, s := range totals {
		repo.orders = append(repo.orders, &domain.SalesOrder{
			ID:            string(rune('a' + i)),
			SalesPersonID: "S",
			OrderStatus:   domain.OrderStatusDelivered,
			OrderDate:     date("2024-01-10"),
			GrandTotal:    decimal.RequireFromString(s),
		})
	}

	target := ordersTarget("S", 0, "2024-01-01", "2024-01-31")
	target.TargetType = domain.TargetTypeRevenue
	target.TargetValue = decimal.NewFromInt(1000)

	calc := NewDefaultProgressCalculator(repo, time.UTC)
	got, _, err := calc.ComputeProgress(context.Background(), target)
	if err != nil {
		t.Fatalf("ComputeProgress failed: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("350.00")) {
		t.Errorf("expected exactly 350.00, got %s", got)
	}
}

func TestComputeProgress_CountedStatusSet(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusDraft,
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusDispatched,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	}
	repo := &fakeOrderRepo{}
	for i, status := range statuses {
		repo.orders = append(repo.orders, &domain.SalesOrder{
			ID:            string(rune('a' + i)),
			SalesPersonID: "S",
			OrderStatus:   status,
			OrderDate:     date("2024-01-10"),
		})
	}

	calc := NewDefaultProgressCalculator(repo, time.UTC)
	got, _, err := calc.ComputeProgress(context.Background(), ordersTarget("S", 10, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("ComputeProgress failed: %v", err)
	}
	// Confirmed, Processing, Dispatched, Delivered
	if !got.Equal(decimal.NewFromInt(4)) {
		t.Errorf("expected 4 counted orders, got %s", got)
	}
}

func TestComputeProgress_OtherSalesmanExcluded(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*domain.SalesOrder{
		{ID: "mine", SalesPersonID: "S", OrderStatus: domain.OrderStatusConfirmed, OrderDate: date("2024-01-10")},
		{ID: "theirs", SalesPersonID: "X", OrderStatus: domain.OrderStatusConfirmed, OrderDate: date("2024-01-10")},
	}}

	calc := NewDefaultProgressCalculator(repo, time.UTC)
	got, _, err := calc.ComputeProgress(context.Background(), ordersTarget("S", 10, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("ComputeProgress failed: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", got)
	}
}

func TestComputeProgress_NonOrderTypesNotComputable(t *testing.T) {
	calc := NewDefaultProgressCalculator(&fakeOrderRepo{}, time.UTC)

	for _, tt := range []domain.TargetType{
		domain.TargetTypeVisits,
		domain.TargetTypeNewCustomers,
		domain.TargetTypeQuotes,
		domain.TargetTypeConversions,
	} {
		target := ordersTarget("S", 10, "2024-01-01", "2024-01-31")
		target.TargetType = tt
		target.CurrentProgress = decimal.NewFromInt(7)

		got, computable, err := calc.ComputeProgress(context.Background(), target)
		if err != nil {
			t.Fatalf("ComputeProgress(%s) failed: %v", tt, err)
		}
		if computable {
			t.Errorf("%s must not be computable from orders", tt)
		}
		if !got.Equal(decimal.NewFromInt(7)) {
			t.Errorf("%s: stored progress must be returned unchanged, got %s", tt, got)
		}
	}
}
