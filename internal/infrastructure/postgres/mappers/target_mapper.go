package mappers

import (
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/models"
)

func ToGORMTarget(target *domain.SalesTarget) *models.SalesTargetModel {
	return &models.SalesTargetModel{
		ID:              target.ID,
		SalesmanID:      target.SalesmanID,
		TargetType:      target.TargetType,
		TargetValue:     target.TargetValue,
		Period:          target.Period,
		StartDate:       target.StartDate,
		EndDate:         target.EndDate,
		CurrentProgress: target.CurrentProgress,
		Status:          target.Status,
		CompletedAt:     target.CompletedAt,
		CreatedAt:       target.CreatedAt,
		UpdatedAt:       target.UpdatedAt,
	}
}

func ToDomainTarget(model *models.SalesTargetModel) *domain.SalesTarget {
	return &domain.SalesTarget{
		ID:              model.ID,
		SalesmanID:      model.SalesmanID,
		TargetType:      model.TargetType,
		TargetValue:     model.TargetValue,
		Period:          model.Period,
		StartDate:       model.StartDate,
		EndDate:         model.EndDate,
		CurrentProgress: model.CurrentProgress,
		Status:          model.Status,
		CompletedAt:     model.CompletedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
