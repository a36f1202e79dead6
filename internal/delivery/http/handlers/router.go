package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(reconcileHandler *ReconcileHandler, targetHandler *TargetHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/reconcile", reconcileHandler.HandleReconcile)
	mux.HandleFunc("/targets", targetHandler.HandleTargets)
	mux.HandleFunc("/targets/cancel", targetHandler.HandleCancelTarget)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}
