package targetdto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

type TargetOutput struct {
	ID              string              `json:"id"`
	SalesmanID      string              `json:"salesman_id"`
	TargetType      domain.TargetType   `json:"target_type"`
	TargetValue     decimal.Decimal     `json:"target_value"`
	Period          domain.TargetPeriod `json:"period"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	CurrentProgress decimal.Decimal     `json:"current_progress"`
	ProgressPercent decimal.Decimal     `json:"progress_percent"`
	Status          domain.TargetStatus `json:"status"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
}

func ToTargetOutput(target *domain.SalesTarget) *TargetOutput {
	return &TargetOutput{
		ID:              target.ID,
		SalesmanID:      target.SalesmanID,
		TargetType:      target.TargetType,
		TargetValue:     target.TargetValue,
		Period:          target.Period,
		StartDate:       target.StartDate,
		EndDate:         target.EndDate,
		CurrentProgress: target.CurrentProgress,
		ProgressPercent: target.ProgressPercent(),
		Status:          target.Status,
		CompletedAt:     target.CompletedAt,
	}
}
