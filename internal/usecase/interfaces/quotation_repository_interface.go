package interfaces

//go:generate mockgen -source=quotation_repository_interface.go -destination=mocks/quotation_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Decide writes the terminal status together with the linked order (when non-nil) in one
// transaction: either both land or neither does.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByPartner(ctx context.Context, partnerID string) ([]entities.Quotation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation, expected entities.QuotationStatus) (entities.Quotation, error)
	Decide(ctx context.Context, q entities.Quotation, expected entities.QuotationStatus, linked *entities.Order) error
}
