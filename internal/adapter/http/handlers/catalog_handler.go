package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/dto/request"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the cache invalidation hook called by the catalog administration.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// InvalidateCache drops one service when service_id is given, otherwise every cached entry.
func (h *CatalogHandler) InvalidateCache(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.InvalidateCatalogRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	var err error
	if id := strings.TrimSpace(payload.ServiceID); id != "" {
		err = h.usecase.InvalidateService(actor, id)
	} else {
		err = h.usecase.InvalidateAll(actor)
	}
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr, ok := mapSharedError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidServiceID) {
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	}
	return internalError(err)
}
