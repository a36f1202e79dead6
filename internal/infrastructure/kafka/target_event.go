package publisher

// TargetEvent is published to target-events when reconciliation flips a
// target to Completed.
type TargetEvent struct {
	TargetID        string `json:"target_id"`
	SalesmanID      string `json:"salesman_id"`
	TargetType      string `json:"target_type"`
	Status          string `json:"status"`
	CurrentProgress string `json:"current_progress"`
	TargetValue     string `json:"target_value"`
}
