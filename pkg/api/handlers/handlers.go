package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cbodonnell/asteroids/pkg/log"
	"github.com/cbodonnell/asteroids/pkg/repositories"
	"github.com/cbodonnell/asteroids/pkg/state"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func HandleGetState(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := stateManager.Get(r.Context())
		if err != nil {
			if errors.Is(err, state.ErrNoSnapshot) {
				http.Error(w, "No game state yet", http.StatusServiceUnavailable)
				return
			}
			log.Error("failed to get game state: %v", err)
			http.Error(w, "Failed to get game state", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func HandleListTopRuns(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		runs, err := repository.ListTopRuns(r.Context(), limit)
		if err != nil {
			log.Error("failed to list runs: %v", err)
			http.Error(w, "Failed to list runs", http.StatusInternalServerError)
			return
		}
		writeJSON(w, runs)
	}
}

func HandleGetRun(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runID, err := uuid.Parse(mux.Vars(r)["runID"])
		if err != nil {
			http.Error(w, "Failed to parse runID", http.StatusBadRequest)
			return
		}

		run, err := repository.GetRun(r.Context(), runID)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Run not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get run: %v", err)
			http.Error(w, "Failed to get run", http.StatusInternalServerError)
			return
		}
		writeJSON(w, run)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
