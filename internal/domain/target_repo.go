package domain

import (
	"context"
	"time"
)

type TargetFilters struct {
	SalesmanID string
	Statuses   []TargetStatus
	TargetType TargetType
}

type TargetRepository interface {
	CreateTarget(ctx context.Context, target *SalesTarget) error
	GetTargetByID(ctx context.Context, targetID string) (*SalesTarget, error)
	GetActiveTargets(ctx context.Context, salesmanID string) ([]*SalesTarget, error)
	GetTargets(ctx context.Context, filters TargetFilters, page, limit int64) ([]*SalesTarget, int64, error)
	FindExpiredTargets(ctx context.Context, asOf time.Time) ([]*SalesTarget, error)
	UpdateTargetStatus(ctx context.Context, targetID string, newStatus TargetStatus) error

	// SaveProgress persists current_progress, status and completed_at
	// only. Nothing else on the row is touched.
	SaveProgress(ctx context.Context, target *SalesTarget) error
}
