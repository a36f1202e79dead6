package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/domain"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase"
	targetdto "github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/dto/target"
)

type TargetHandler struct {
	targetUsecase usecase.TargetUsecase
}

func NewTargetHandler(targetUsecase usecase.TargetUsecase) *TargetHandler {
	return &TargetHandler{targetUsecase: targetUsecase}
}

func (h *TargetHandler) HandleTargets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createTarget(w, r)
	case http.MethodGet:
		h.listTargets(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TargetHandler) createTarget(w http.ResponseWriter, r *http.Request) {
	var input targetdto.CreateTargetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.targetUsecase.CreateTarget(r.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrSalesmanRequired) ||
			errors.Is(err, domain.ErrNegativeTargetValue) ||
			errors.Is(err, domain.ErrInvalidTargetWindow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(output)
}

func (h *TargetHandler) listTargets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)

	input := &targetdto.GetTargetsInput{
		SalesmanID: q.Get("salesman_id"),
		TargetType: domain.TargetType(q.Get("target_type")),
		Page:       page,
		Limit:      limit,
	}
	if status := q.Get("status"); status != "" {
		input.Statuses = []domain.TargetStatus{domain.TargetStatus(status)}
	}

	targets, total, err := h.targetUsecase.GetTargets(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"targets": targets,
		"total":   total,
	})
}

func (h *TargetHandler) HandleCancelTarget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	targetID := r.URL.Query().Get("id")
	if targetID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.targetUsecase.CancelTarget(r.Context(), targetID); err != nil {
		if errors.Is(err, domain.ErrTargetNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
