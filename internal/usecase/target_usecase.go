package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	targetdto "github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/dto/target"
)

type TargetUsecase interface {
	CreateTarget(ctx context.Context, input *targetdto.CreateTargetInput) (*targetdto.TargetOutput, error)
	GetTargetByID(ctx context.Context, targetID string) (*targetdto.TargetOutput, error)
	GetTargets(ctx context.Context, input *targetdto.GetTargetsInput) ([]*targetdto.TargetOutput, int64, error)
	CancelTarget(ctx context.Context, targetID string) error
	FailExpiredTargets(ctx context.Context) error
}

type DefaultTargetUsecase struct {
	TargetRepo domain.TargetRepository
	Loc        *time.Location
}

func NewDefaultTargetUsecase(targetRepo domain.TargetRepository, loc *time.Location) *DefaultTargetUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultTargetUsecase{TargetRepo: targetRepo, Loc: loc}
}

func (uc *DefaultTargetUsecase) CreateTarget(ctx context.Context, input *targetdto.CreateTargetInput) (*targetdto.TargetOutput, error) {
	if input.SalesmanID == "" {
		return nil, domain.ErrSalesmanRequired
	}
	if input.TargetValue.IsNegative() {
		return nil, domain.ErrNegativeTargetValue
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidTargetWindow
	}

	target := &domain.SalesTarget{
		SalesmanID:  input.SalesmanID,
		TargetType:  input.TargetType,
		TargetValue: input.TargetValue,
		Period:      input.Period,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      domain.TargetStatusActive,
	}

	if err := uc.TargetRepo.CreateTarget(ctx, target); err != nil {
		return nil, err
	}

	return targetdto.ToTargetOutput(target), nil
}

func (uc *DefaultTargetUsecase) GetTargetByID(ctx context.Context, targetID string) (*targetdto.TargetOutput, error) {
	target, err := uc.TargetRepo.GetTargetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return targetdto.ToTargetOutput(target), nil
}

func (uc *DefaultTargetUsecase) GetTargets(ctx context.Context, input *targetdto.GetTargetsInput) ([]*targetdto.TargetOutput, int64, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 50
	}

	filters := domain.TargetFilters{
		SalesmanID: input.SalesmanID,
		Statuses:   input.Statuses,
		TargetType: input.TargetType,
	}

	targets, total, err := uc.TargetRepo.GetTargets(ctx, filters, input.Page, input.Limit)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*targetdto.TargetOutput, len(targets))
	for i, target := range targets {
		outputs[i] = targetdto.ToTargetOutput(target)
	}

	return outputs, total, nil
}

// CancelTarget sets the sticky Cancelled status. A cancelled target is
// exempt from every auto-transition from then on.
func (uc *DefaultTargetUsecase) CancelTarget(ctx context.Context, targetID string) error {
	target, err := uc.TargetRepo.GetTargetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Status == domain.TargetStatusCancelled {
		return nil
	}
	return uc.TargetRepo.UpdateTargetStatus(ctx, targetID, domain.TargetStatusCancelled)
}

// FailExpiredTargets sweeps Active targets whose window has passed and
// marks them Failed. Progress itself is untouched.
func (uc *DefaultTargetUsecase) FailExpiredTargets(ctx context.Context) error {
	now := time.Now()
	targets, err := uc.TargetRepo.FindExpiredTargets(ctx, now)
	if err != nil {
		return err
	}

	for _, target := range targets {
		target.RefreshStatus(now, uc.Loc)
		if target.Status == domain.TargetStatusActive {
			continue
		}
		if err := uc.TargetRepo.SaveProgress(ctx, target); err != nil {
			slog.Error("failed to mark expired target", "target_id", target.ID, "error", err.Error())
		}
	}

	return nil
}
