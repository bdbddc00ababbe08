package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pcremote/internal/startup"
)

type startupResponse struct {
	State string               `json:"state"`
	Steps []startup.StepResult `json:"steps"`
}

// newStatusHandler serves liveness and the outcome of the startup job.
// job may be nil when startup notifications are disabled.
func newStatusHandler(job *startup.Job) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/startup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		resp := startupResponse{State: "disabled", Steps: []startup.StepResult{}}
		if job != nil {
			resp.State = job.State().String()
			resp.Steps = job.Results()
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(resp); err != nil {
			slog.Warn("encode startup status", "error", err)
		}
	})
	return recoverPanic(mux)
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
