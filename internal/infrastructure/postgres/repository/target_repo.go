package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/mappers"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTargetRepository struct {
	DB *gorm.DB
}

func NewDefaultTargetRepository(db *gorm.DB) *DefaultTargetRepository {
	return &DefaultTargetRepository{DB: db}
}

func (r *DefaultTargetRepository) CreateTarget(ctx context.Context, target *domain.SalesTarget) error {
	if target.ID == "" {
		target.ID = uuid.New().String()
	}
	targetModel := mappers.ToGORMTarget(target)
	if err := r.DB.WithContext(ctx).Create(targetModel).Error; err != nil {
		return err
	}
	target.CreatedAt = targetModel.CreatedAt
	target.UpdatedAt = targetModel.UpdatedAt
	return nil
}

func (r *DefaultTargetRepository) GetTargetByID(ctx context.Context, targetID string) (*domain.SalesTarget, error) {
	var targetModel models.SalesTargetModel
	if err := r.DB.WithContext(ctx).First(&targetModel, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTargetNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTarget(&targetModel), nil
}

func (r *DefaultTargetRepository) GetActiveTargets(ctx context.Context, salesmanID string) ([]*domain.SalesTarget, error) {
	query := r.DB.WithContext(ctx).
		Where("status = ?", domain.TargetStatusActive)
	if salesmanID != "" {
		query = query.Where("salesman_id = ?", salesmanID)
	}

	var targetModels []models.SalesTargetModel
	if err := query.Find(&targetModels).Error; err != nil {
		return nil, err
	}

	targets := make([]*domain.SalesTarget, len(targetModels))
	for i, targetModel := range targetModels {
		targets[i] = mappers.ToDomainTarget(&targetModel)
	}

	return targets, nil
}

func (r *DefaultTargetRepository) GetTargets(ctx context.Context, filters domain.TargetFilters, page, limit int64) ([]*domain.SalesTarget, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Model(&models.SalesTargetModel{})

	if filters.SalesmanID != "" {
		baseQuery = baseQuery.Where("salesman_id = ?", filters.SalesmanID)
	}
	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if filters.TargetType != "" {
		baseQuery = baseQuery.Where("target_type = ?", filters.TargetType)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count targets: %w", err)
	}

	offset := (page - 1) * limit
	var targetModels []models.SalesTargetModel
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&targetModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find targets: %w", err)
	}

	targets := make([]*domain.SalesTarget, len(targetModels))
	for i, targetModel := range targetModels {
		targets[i] = mappers.ToDomainTarget(&targetModel)
	}

	return targets, total, nil
}

func (r *DefaultTargetRepository) FindExpiredTargets(ctx context.Context, asOf time.Time) ([]*domain.SalesTarget, error) {
	var targetModels []models.SalesTargetModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.TargetStatusActive).
		Where("end_date < ?", asOf).
		Find(&targetModels).Error; err != nil {
		return nil, err
	}

	targets := make([]*domain.SalesTarget, len(targetModels))
	for i, targetModel := range targetModels {
		targets[i] = mappers.ToDomainTarget(&targetModel)
	}

	return targets, nil
}

func (r *DefaultTargetRepository) UpdateTargetStatus(ctx context.Context, targetID string, newStatus domain.TargetStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.SalesTargetModel{}).
		Where("id = ?", targetID).
		Update("status", newStatus).Error
}

func (r *DefaultTargetRepository) SaveProgress(ctx context.Context, target *domain.SalesTarget) error {
	// Only the reconciliation-owned fields are written
	updateData := map[string]interface{}{
		"current_progress": target.CurrentProgress,
		"status":           target.Status,
		"completed_at":     target.CompletedAt,
	}

	return r.DB.WithContext(ctx).
		Model(&models.SalesTargetModel{}).
		Where("id = ?", target.ID).
		Updates(updateData).Error
}
