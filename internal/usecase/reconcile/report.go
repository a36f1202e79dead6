package reconcile

// Filter narrows a reconciliation run, e.g. a single-salesman repair
// run triggered by an admin.
type Filter struct {
	SalesmanID string
}

type TargetFailure struct {
	TargetID string `json:"target_id"`
	Reason   string `json:"reason"`
}

// Report partitions the processed targets for observability. A failed
// target never aborts the run; it lands here instead.
type Report struct {
	RunID     string          `json:"run_id"`
	Updated   []string        `json:"updated"`
	Unchanged []string        `json:"unchanged"`
	Failed    []TargetFailure `json:"failed"`
}

func (r *Report) UpdatedCount() int   { return len(r.Updated) }
func (r *Report) UnchangedCount() int { return len(r.Unchanged) }

func (r *Report) FailedTargetIDs() []string {
	ids := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		ids[i] = f.TargetID
	}
	return ids
}
