package targetdto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
)

type CreateTargetInput struct {
	SalesmanID  string              `json:"salesman_id"`
	TargetType  domain.TargetType   `json:"target_type"`
	TargetValue decimal.Decimal     `json:"target_value"`
	Period      domain.TargetPeriod `json:"period"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
}

type GetTargetsInput struct {
	SalesmanID string                `json:"salesman_id"`
	Statuses   []domain.TargetStatus `json:"statuses"`
	TargetType domain.TargetType     `json:"target_type"`
	Page       int64                 `json:"page"`
	Limit      int64                 `json:"limit"`
}
