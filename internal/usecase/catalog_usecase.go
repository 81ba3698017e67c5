package usecase

import (
	"strings"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICatalogUseCase lets catalog writers drop cached service snapshots after a change.
type ICatalogUseCase interface {
	InvalidateService(actor entities.Actor, serviceID string) error
	InvalidateAll(actor entities.Actor) error
}

type CatalogUseCase struct {
	cache  interfaces.ICatalogCacheInvalidator
	logger *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(cache interfaces.ICatalogCacheInvalidator, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{cache: cache, logger: logger}
}

func (u *CatalogUseCase) InvalidateService(actor entities.Actor, serviceID string) error {
	if !actor.Is(entities.RoleAdmin) {
		return ErrForbidden
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrInvalidServiceID
	}
	u.cache.Invalidate(serviceID)
	u.logger.Info("[catalog][usecase] cache entry invalidated", zap.String("service_id", serviceID))
	return nil
}

func (u *CatalogUseCase) InvalidateAll(actor entities.Actor) error {
	if !actor.Is(entities.RoleAdmin) {
		return ErrForbidden
	}
	u.cache.InvalidateAll()
	u.logger.Info("[catalog][usecase] cache cleared")
	return nil
}
