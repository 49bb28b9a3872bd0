package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aykutsen/groupstage/internal/usecase"
)

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateSchedule")
	defer span.End()

	games, err := h.scheduleService.Generate(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "generate schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gamesToDTO(games))
}

func (h *Handler) ClearSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearSchedule")
	defer span.End()

	if err := h.scheduleService.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "clear schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}

type recordResultRequest struct {
	HomeGoals *int `json:"home_goals" validate:"required,gte=0"`
	AwayGoals *int `json:"away_goals" validate:"required,gte=0"`
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordResult")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))

	var req recordResultRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.RecordResult(ctx, gameID, *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(updated))
}

func (h *Handler) PlayNextWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayNextWeek")
	defer span.End()

	played, err := h.matchService.PlayNextWeek(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "play next week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(played))
}

func (h *Handler) PlayWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayWeek")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("week"))
	week, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be an integer, got %q", usecase.ErrInvalidInput, raw))
		return
	}

	played, err := h.matchService.PlayWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "play week failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(played))
}

func (h *Handler) PlayAllRemaining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayAllRemaining")
	defer span.End()

	played, err := h.matchService.PlayAllRemaining(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "play all remaining failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(played))
}

func (h *Handler) ResetResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetResults")
	defer span.End()

	if err := h.matchService.ResetResults(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reset results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}
