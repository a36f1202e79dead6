package mappers

import (
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.SalesOrderModel) *domain.SalesOrder {
	return &domain.SalesOrder{
		ID:             model.ID,
		OrderNumber:    model.OrderNumber,
		SalesPersonID:  model.SalesPersonID,
		CustomerID:     model.CustomerID,
		OrderStatus:    model.OrderStatus,
		OrderDate:      model.OrderDate,
		ApprovalStatus: model.ApprovalStatus,
		ApprovedAt:     model.ApprovedAt,
		GrandTotal:     model.GrandTotal,
	}
}
