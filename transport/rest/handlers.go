package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/killer-backend/internal/entity"
)

const checkTimeout = 3 * time.Second

type stateReader interface {
	State(ctx context.Context) entity.Snapshot
}

type characterLister interface {
	List(ctx context.Context) ([]entity.Character, error)
}

// Checker verifies that an infrastructure dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

type handlers struct {
	logger     *slog.Logger
	game       stateReader
	characters characterLister
	checks     map[string]Checker
}

type checkResult struct {
	Status string `json:"status"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := io.WriteString(w, "pong"); err != nil {
		that.logger.Warn("failed to write ping response", "error", err)
	}
}

func (that *handlers) gameState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, that.logger, http.StatusOK, that.game.State(r.Context()))
}

func (that *handlers) listCharacters(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "listCharacters")

	characters, err := that.characters.List(r.Context())
	if err != nil {
		log.Error("failed to list characters", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, that.logger, http.StatusOK, characters)
}

func (that *handlers) health(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "health")

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	results := make(map[string]checkResult, len(that.checks))
	status := http.StatusOK

	for name, checker := range that.checks {
		if err := checker.Check(ctx); err != nil {
			log.Error("health check failed", "name", name, "error", err)
			results[name] = checkResult{Status: "error"}
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = checkResult{Status: "ok"}
	}

	writeJSON(w, that.logger, status, results)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
