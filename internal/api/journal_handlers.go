package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/moodscript/internal/analytics"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/httputil"
)

type SaveDraftRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

type GetDraftResponse struct {
	Draft *entity.Draft `json:"draft"`
}

// GetDraft godoc
// @Summary Get own draft
// @Description draft is null when nothing is saved
// @Tags draft
// @Produce json
// @Success 200 {object} GetDraftResponse
// @Security BearerAuth
// @Router /draft [get]
func (s *Server) GetDraft(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get draft error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	draft, err := s.draftsService.GetDraft(ctx, uid)
	if err != nil {
		logger.Error("getting draft error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting draft", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetDraftResponse{Draft: draft})
}

// SaveDraft godoc
// @Summary Autosave draft
// @Tags draft
// @Accept json
// @Produce json
// @Param request body SaveDraftRequest true "draft"
// @Success 200 {object} entity.Draft
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /draft [put]
func (s *Server) SaveDraft(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save draft error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveDraftRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save draft error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	draft, err := s.draftsService.SaveDraft(ctx, uid, service.SaveDraftRequest{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save draft error: invalid draft", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid draft", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save draft error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save draft error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving draft", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, draft)
}

// GetAnalytics godoc
// @Summary Mood timeline and stats
// @Tags analytics
// @Produce json
// @Param period query string false "7d, 15d or 30d" default(30d)
// @Success 200 {object} service.AnalyticsResult
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /analytics [get]
func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get analytics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		logger.Error("get analytics error: invalid period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be one of 7d, 15d, 30d", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	result, err := s.analyticsService.GetAnalytics(ctx, uid, period)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get analytics error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get analytics error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing analytics", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("analytics provided", slog.String("period", string(period)))
}
