package httpadapter

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"adpilot/internal/core/port"
)

const defaultMaxBodyBytes = 1 << 20

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc          port.CampaignUseCase
	logger       *slog.Logger
	validate     *validator.Validate
	maxBodyBytes int64
	router       chi.Router
}

// NewHandler creates a handler with all routes configured. Request bodies
// larger than maxBodyBytes are rejected; zero selects a 1 MiB limit.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	h := &Handler{
		svc:          svc,
		logger:       logger,
		validate:     newValidator(),
		maxBodyBytes: maxBodyBytes,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.handleHealth)

		r.Post("/conversations", h.handleCreateConversation)
		r.Get("/conversations/{id}", h.handleGetConversation)
		r.Post("/conversations/{id}/messages", h.handleSendMessage)

		r.Post("/specs/extract", h.handleExtractSpec)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/campaigns/{id}/approve", h.handleApproveCampaign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
