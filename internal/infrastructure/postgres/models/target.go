package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

type SalesTargetModel struct {
	ID              string              `gorm:"primaryKey;type:uuid"`
	SalesmanID      string              `gorm:"type:uuid;index:idx_salesman_status"`
	TargetType      domain.TargetType   `gorm:"index:idx_target_type"`
	TargetValue     decimal.Decimal     `gorm:"type:decimal(20,4)"`
	Period          domain.TargetPeriod
	StartDate       time.Time           `gorm:"index:idx_target_window"`
	EndDate         time.Time           `gorm:"index:idx_target_window"`
	CurrentProgress decimal.Decimal     `gorm:"type:decimal(20,4)"`
	Status          domain.TargetStatus `gorm:"index:idx_salesman_status"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
