package interfaces

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) when nothing matches.
//   - Create reserves the order code in the same write; a reserved code yields ErrOrderCodeTaken.
//   - Update and Delete are conditional on the status (and version) the caller read; losing the
//     race yields ErrConditionFailed. Update stores o with Version incremented.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByOrderCode(ctx context.Context, code string) (entities.Order, error)
	FindByIdOrCode(ctx context.Context, value string) (entities.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Order, error)
	ListByPartner(ctx context.Context, partnerID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order, expected entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id string, expected entities.OrderStatus) error
}
