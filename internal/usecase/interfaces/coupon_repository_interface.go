package interfaces

//go:generate mockgen -source=coupon_repository_interface.go -destination=mocks/coupon_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for Coupon, keyed by normalized code.
type ICouponRepository interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	FindByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Delete(ctx context.Context, code string) error
}
