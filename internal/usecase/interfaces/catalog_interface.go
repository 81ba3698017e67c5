package interfaces

//go:generate mockgen -source=catalog_interface.go -destination=mocks/catalog_interface_mock.go -package=mock_interfaces

import (
	"context"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

// ICatalogReader reads live service-type records. A zero snapshot means the service is gone.
type ICatalogReader interface {
	GetServicePrice(ctx context.Context, serviceID string) (entities.ServiceSnapshot, error)
}

// ICatalogCacheInvalidator is called by catalog writers.
type ICatalogCacheInvalidator interface {
	Invalidate(serviceID string)
	InvalidateAll()
}

// IRateCardRepository resolves rate-card entries. Unknown ids are simply absent from the result.
type IRateCardRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]entities.RateCardEntry, error)
}
