package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/internal/service"
	"github.com/limbo/moodscript/pkg/entity"
	"github.com/limbo/moodscript/pkg/httputil"
)

type CreateCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GetCollectionsResponse struct {
	UserID      string               `json:"uid"`
	Collections []*entity.Collection `json:"collections"`
}

// GetCollections godoc
// @Summary List own collections
// @Tags collections
// @Produce json
// @Success 200 {object} GetCollectionsResponse
// @Security BearerAuth
// @Router /collections [get]
func (s *Server) GetCollections(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get collections error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	collections, err := s.collectionsService.GetCollections(ctx, uid)
	if err != nil {
		logger.Error("getting collections list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting collections list", nil)
		return
	}
	if collections == nil {
		collections = []*entity.Collection{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCollectionsResponse{
		UserID:      uid.String(),
		Collections: collections,
	})
	logger.Info("collections provided")
}

// GetCollection godoc
// @Summary Get own collection
// @Tags collections
// @Produce json
// @Param id path string true "collection id"
// @Success 200 {object} entity.Collection
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /collections/{id} [get]
func (s *Server) GetCollection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get collection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get collection error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid collection id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	collection, err := s.collectionsService.GetCollection(ctx, uid, id)
	if err != nil {
		writeCollectionError(w, logger, "get collection error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, collection)
}

// CreateCollection godoc
// @Summary Create collection
// @Tags collections
// @Accept json
// @Produce json
// @Param request body CreateCollectionRequest true "collection"
// @Success 201 {object} entity.Collection
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 429 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /collections [post]
func (s *Server) CreateCollection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create collection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateCollectionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create collection error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	collection, err := s.collectionsService.CreateCollection(ctx, uid, service.CreateCollectionRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeCollectionError(w, logger, "create collection error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, collection)
	logger.Info("collection created", slog.String("collection_id", collection.ID.String()))
}

// DeleteCollection godoc
// @Summary Delete own collection with its entries
// @Tags collections
// @Param id path string true "collection id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /collections/{id} [delete]
func (s *Server) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("collection deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("collection deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid collection id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.collectionsService.DeleteCollection(ctx, uid, id)
	if err != nil {
		writeCollectionError(w, logger, "collection deletion error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("collection deleted", slog.String("collection_id", id.String()))
}

func writeCollectionError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(prefix+": invalid collection", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid collection", err)
	case errors.Is(err, errorvalues.ErrCollectionExists):
		logger.Error(prefix + ": attempt to create existed collection")
		httputil.WriteErrorResponse(w, http.StatusConflict, "collection with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrCollectionNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(prefix + ": unexist or foreign collection")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "collection doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(prefix + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing collection", nil)
	}
}
