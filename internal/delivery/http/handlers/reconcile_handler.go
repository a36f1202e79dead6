package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/reconcile"
)

type ReconcileHandler struct {
	reconcileUsecase reconcile.ReconcileUsecase
}

func NewReconcileHandler(reconcileUsecase reconcile.ReconcileUsecase) *ReconcileHandler {
	return &ReconcileHandler{reconcileUsecase: reconcileUsecase}
}

type reconcileResponse struct {
	RunID           string                    `json:"run_id"`
	UpdatedCount    int                       `json:"updatedCount"`
	UnchangedCount  int                       `json:"unchangedCount"`
	FailedTargetIDs []string                  `json:"failedTargetIds"`
	Failed          []reconcile.TargetFailure `json:"failed,omitempty"`
}

// HandleReconcile triggers a reconciliation run on demand. An optional
// salesman_id query param scopes it to a single-salesman repair run.
// Partial failure is not an HTTP error: the admin gets the report and
// can re-trigger just the failed targets' salesman.
func (h *ReconcileHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := reconcile.Filter{SalesmanID: r.URL.Query().Get("salesman_id")}

	report, err := h.reconcileUsecase.ReconcileAll(r.Context(), filter)
	if err != nil && !errors.Is(err, context.Canceled) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if report == nil {
		http.Error(w, "reconciliation aborted", http.StatusServiceUnavailable)
		return
	}

	resp := reconcileResponse{
		RunID:           report.RunID,
		UpdatedCount:    report.UpdatedCount(),
		UnchangedCount:  report.UnchangedCount(),
		FailedTargetIDs: report.FailedTargetIDs(),
		Failed:          report.Failed,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
