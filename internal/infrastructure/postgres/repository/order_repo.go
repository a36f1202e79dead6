package repository

import (
	"context"
	"fmt"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/mappers"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// FindEligibleOrders mirrors progress.EligibleInWindow in SQL. The
// approval-aware branch is the point: approved orders are matched on
// approved_at, orders without an approval timestamp on order_date. A
// single-column date filter here would silently over- or undercount.
func (r *DefaultOrderRepository) FindEligibleOrders(ctx context.Context, filter domain.EligibleOrdersFilter) ([]*domain.SalesOrder, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.SalesOrderModel{}).
		Where("sales_person_id = ?", filter.SalesPersonID)

	if len(filter.Statuses) > 0 {
		query = query.Where("order_status IN (?)", filter.Statuses)
	}

	if filter.ApprovalAware {
		query = query.Where(
			r.DB.Where("approval_status = ? AND approved_at BETWEEN ? AND ?",
				domain.ApprovalApproved, filter.From, filter.To).
				Or("approved_at IS NULL AND order_date BETWEEN ? AND ?",
					filter.From, filter.To),
		)
	} else {
		query = query.Where("order_date BETWEEN ? AND ?", filter.From, filter.To)
	}

	var orderModels []models.SalesOrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find eligible orders: %w", err)
	}

	orders := make([]*domain.SalesOrder, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

var _ domain.OrderRepository = (*DefaultOrderRepository)(nil)
