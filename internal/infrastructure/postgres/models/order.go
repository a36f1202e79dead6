package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

// SalesOrderModel is a read model over the orders table owned by the
// main backend. This service never writes to it.
type SalesOrderModel struct {
	ID             string             `gorm:"primaryKey;type:uuid"`
	OrderNumber    string
	SalesPersonID  string             `gorm:"type:uuid;index:idx_salesperson_status"`
	CustomerID     string             `gorm:"type:uuid"`
	OrderStatus    domain.OrderStatus `gorm:"index:idx_salesperson_status"`
	OrderDate      time.Time          `gorm:"index:idx_order_date"`
	ApprovalStatus domain.ApprovalStatus
	ApprovedAt     *time.Time      `gorm:"index:idx_approved_at"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(20,4)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
