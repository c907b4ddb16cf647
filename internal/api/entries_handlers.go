package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/metrics"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/httputil"
)

const (
	dateLayout          = "2006-01-02"
	unorganizedFilter   = "unorganized"
	ascendingOrderParam = "asc"
)

type EntryRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Mood         string  `json:"mood"`
	MoodQuery    string  `json:"moodQuery"`
	CollectionID *string `json:"collectionId"`
}

// collectionID treats missing and empty values as "no collection".
func (req EntryRequest) collectionID() (*uuid.UUID, error) {
	if req.CollectionID == nil || strings.TrimSpace(*req.CollectionID) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*req.CollectionID))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateEntry godoc
// @Summary Publish journal entry
// @Tags entries
// @Accept json
// @Produce json
// @Param request body EntryRequest true "entry"
// @Success 201 {object} entity.Entry
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 429 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req EntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	collectionID, err := req.collectionID()
	if err != nil {
		logger.Error("create entry error: invalid collection id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid collection id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entry, err := s.entriesService.CreateEntry(ctx, uid, service.CreateEntryRequest{
		Title:        req.Title,
		Content:      req.Content,
		Mood:         req.Mood,
		MoodQuery:    req.MoodQuery,
		CollectionID: collectionID,
	})
	if err != nil {
		writeEntryError(w, logger, "create entry error", err)
		return
	}
	metrics.EntryCreated()
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("entry created", slog.String("entry_id", entry.ID.String()))
}

// GetEntries godoc
// @Summary List own entries
// @Tags entries
// @Produce json
// @Param collectionId query string false "collection id or 'unorganized'"
// @Param mood query string false "mood id"
// @Param search query string false "text in title or content"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param order query string false "asc or desc"
// @Param page query int false "page, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} service.EntriesPage
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	query, err := parseEntriesQuery(r)
	if err != nil {
		logger.Error("get entries error: invalid query", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid query parameters", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	page, err := s.entriesService.GetEntries(ctx, uid, query)
	if err != nil {
		logger.Error("getting entries list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting entries list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, page)
	logger.Info("entries provided")
}

func parseEntriesQuery(r *http.Request) (service.EntriesQuery, error) {
	values := r.URL.Query()
	query := service.EntriesQuery{
		Mood:     values.Get("mood"),
		Search:   strings.TrimSpace(values.Get("search")),
		OrderAsc: strings.EqualFold(values.Get("order"), ascendingOrderParam),
	}
	switch c := values.Get("collectionId"); c {
	case "":
	case unorganizedFilter:
		query.Unorganized = true
	default:
		id, err := uuid.Parse(c)
		if err != nil {
			return query, errors.New("invalid collectionId")
		}
		query.CollectionID = &id
	}
	if v := values.Get("startDate"); v != "" {
		start, err := time.Parse(dateLayout, v)
		if err != nil {
			return query, errors.New("invalid startDate")
		}
		query.StartDate = &start
	}
	if v := values.Get("endDate"); v != "" {
		end, err := time.Parse(dateLayout, v)
		if err != nil {
			return query, errors.New("invalid endDate")
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		query.EndDate = &end
	}
	// Out of range values are normalized by the service
	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return query, errors.New("invalid page")
		}
		query.Page = page
	}
	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return query, errors.New("invalid limit")
		}
		query.Limit = limit
	}
	return query, nil
}

// GetEntry godoc
// @Summary Get own entry
// @Tags entries
// @Produce json
// @Param id path string true "entry id"
// @Success 200 {object} entity.EntryView
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [get]
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.GetEntry(ctx, uid, id)
	if err != nil {
		writeEntryError(w, logger, "get entry error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

// UpdateEntry godoc
// @Summary Edit own entry
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "entry id"
// @Param request body EntryRequest true "entry"
// @Success 200 {object} entity.Entry
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [put]
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update entry error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	var req EntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	collectionID, err := req.collectionID()
	if err != nil {
		logger.Error("update entry error: invalid collection id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid collection id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entry, err := s.entriesService.UpdateEntry(ctx, uid, id, service.UpdateEntryRequest{
		Title:        req.Title,
		Content:      req.Content,
		Mood:         req.Mood,
		MoodQuery:    req.MoodQuery,
		CollectionID: collectionID,
	})
	if err != nil {
		writeEntryError(w, logger, "update entry error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("entry updated", slog.String("entry_id", entry.ID.String()))
}

// DeleteEntry godoc
// @Summary Delete own entry
// @Tags entries
// @Produce json
// @Param id path string true "entry id"
// @Success 200 {object} entity.Entry
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("entry deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("entry deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.DeleteEntry(ctx, uid, id)
	if err != nil {
		writeEntryError(w, logger, "entry deletion error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("entry deleted", slog.String("entry_id", entry.ID.String()))
}

func writeEntryError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(prefix+": invalid entry", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry", err)
	case errors.Is(err, errorvalues.ErrInvalidMood):
		logger.Error(prefix + ": unknown mood")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown mood", nil)
	case errors.Is(err, errorvalues.ErrCollectionNotFound):
		logger.Error(prefix + ": unexist collection")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "collection doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrEntryNotFound):
		logger.Error(prefix + ": unexist entry")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(prefix + ": entry has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(prefix + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing entry", nil)
	}
}
