package publisher

// OrderApprovalEvent arrives on order-approval-events from the main
// backend whenever an order's approval status changes.
type OrderApprovalEvent struct {
	OrderID       string `json:"order_id"`
	SalesPersonID string `json:"sales_person_id"`
	OrderStatus   string `json:"order_status"`
	ApprovedAt    string `json:"approved_at,omitempty"`
}
