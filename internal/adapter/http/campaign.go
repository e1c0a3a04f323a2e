package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// handleExtractSpec looks for a specification in arbitrary model text.
func (h *Handler) handleExtractSpec(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, newExtractionResponse(h.svc.ExtractAndValidate(req.Text)))
}

// handleCreateCampaign validates the submitted specification and creates it
// on the platform as paused drafts. A platform failure answers 502 with the
// partial result so the caller can see which drafts exist.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	ext := h.svc.ExtractAndValidate(string(req.Spec))
	switch ext.Outcome {
	case domain.OutcomeNoSpec:
		writeProblem(w, http.StatusUnprocessableEntity, "no campaign specification found", nil)
		return
	case domain.OutcomeRejected:
		writeProblem(w, http.StatusUnprocessableEntity, ext.Rejection.Reason,
			map[string][]string{ext.Rejection.Rule: {ext.Rejection.Reason}})
		return
	}

	result := h.svc.Materialize(r.Context(), ext.Spec)
	if result.Failed() {
		h.logger.Warn("campaign materialization failed",
			slog.Any("failed_at", result.FailedAt),
			slog.Any("error", result.Error),
		)
		writeJSON(w, http.StatusBadGateway, result)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// handleApproveCampaign activates a reviewed campaign with its ad sets and ads.
func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		var pe *domain.PlatformError
		switch {
		case errors.Is(err, port.ErrEmptyCampaignID), errors.Is(err, port.ErrInvalidObjectID):
			writeProblem(w, http.StatusBadRequest, err.Error(), nil)
		case errors.As(err, &pe):
			writeProblem(w, http.StatusBadGateway, pe.Message, nil)
		default:
			h.logger.Error("approve campaign error", slog.Any("error", err))
			writeProblem(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}
	if result.Failed() {
		h.logger.Warn("campaign activation failed",
			slog.Any("failed_at", result.FailedAt),
			slog.Any("error", result.Error),
		)
		writeJSON(w, http.StatusBadGateway, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
