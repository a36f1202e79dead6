package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "Draft"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDispatched OrderStatus = "Dispatched"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// SalesOrder is consumed, not owned, by this service. ApprovedAt is nil
// until the order has been through the approval step.
type SalesOrder struct {
	ID             string
	OrderNumber    string
	SalesPersonID  string
	CustomerID     string
	OrderStatus    OrderStatus
	OrderDate      time.Time
	ApprovalStatus ApprovalStatus
	ApprovedAt     *time.Time
	GrandTotal     decimal.Decimal
}
