package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/generator"
	"github.com/smartbizlabs/assistgen/internal/model"
)

const tierErrorMessage = "subscription_tier must be one of: starter, standard, premium"

// Store is the archival collaborator. It is write-only from this service's
// point of view and entirely optional: a nil Store disables archival.
type Store interface {
	CreateDocument(ctx context.Context, collection string, body any) (string, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ready(ctx context.Context) error
}

// EventPublisher mirrors the Store's best-effort contract for the generated
// event stream.
type EventPublisher interface {
	GenerationCompleted(ctx context.Context, businessName, tier string, createdAt time.Time)
}

type Handler struct {
	store  Store
	events EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func New(store Store, events EventPublisher, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	// Registered at "/", which matches every unrouted path.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Business Assistant Generator Backend",
	})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in model.BusinessInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	tier, err := entitlements.ParseTier(in.SubscriptionTier)
	if err != nil {
		http.Error(w, tierErrorMessage, http.StatusBadRequest)
		return
	}
	if len(in.Services) == 0 {
		http.Error(w, "services must not be empty", http.StatusBadRequest)
		return
	}

	// Defaults are part of the input record, so the archive sees them too.
	in.ApplyDefaults()
	result := generator.Build(in, tier, h.now())

	h.archive(r.Context(), in, result)
	if h.events != nil {
		h.events.GenerationCompleted(r.Context(), in.BusinessName, result.SubscriptionTier, result.CreatedAt)
	}

	writeJSON(w, http.StatusOK, result)
}

// archive persists both the input and the result. The store being down or
// absent never fails the request; failures are only logged.
func (h *Handler) archive(ctx context.Context, in model.BusinessInput, result model.GenerationResult) {
	if h.store == nil {
		return
	}
	if _, err := h.store.CreateDocument(ctx, "businessinput", in); err != nil {
		h.logger.Error("archive write failed", "collection", "businessinput", "err", err)
	}
	if _, err := h.store.CreateDocument(ctx, "generationresult", result); err != nil {
		h.logger.Error("archive write failed", "collection", "generationresult", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
