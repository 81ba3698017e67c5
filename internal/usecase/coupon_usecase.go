package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/pricing"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponAlreadyExists   = errors.New("coupon already exists")
	ErrInvalidCouponCode     = errors.New("invalid coupon code")
	ErrInvalidDiscount       = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDiscountCap    = errors.New("max discount amount must not be negative")
	ErrInvalidValidityWindow = errors.New("valid from must not be after valid until")
	ErrInvalidCouponRules    = errors.New("every coupon rule needs an application type")
	ErrNoServices            = errors.New("at least one service id is required")
)

type CouponInput struct {
	Code               string
	DiscountPercentage float64
	MaxDiscountAmount  *float64
	ValidFrom          time.Time
	ValidUntil         time.Time
	IsActive           bool
	ApplicableTo       []entities.CouponRule
}

// CouponValidation tells a cart which of its services a coupon would discount.
type CouponValidation struct {
	CouponCode           string
	DiscountPercentage   float64
	MaxDiscountAmount    *float64
	ApplicableServiceIDs []string
}

// ICouponUseCase exposes coupon administration and the public validation check.
type ICouponUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CouponInput) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.Coupon, error)
	Update(ctx context.Context, actor entities.Actor, code string, in CouponInput) (entities.Coupon, error)
	Delete(ctx context.Context, actor entities.Actor, code string) error
	Validate(ctx context.Context, code string, serviceIDs []string) (CouponValidation, error)
}

type CouponUseCase struct {
	repo    interfaces.ICouponRepository
	catalog interfaces.ICatalogReader
	logger  *zap.Logger
	now     func() time.Time
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository, catalog interfaces.ICatalogReader, logger *zap.Logger, now func() time.Time) *CouponUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &CouponUseCase{repo: repo, catalog: catalog, logger: logger, now: now}
}

func (u *CouponUseCase) Create(ctx context.Context, actor entities.Actor, in CouponInput) (entities.Coupon, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.Coupon{}, ErrForbidden
	}
	code := pricing.NormalizeCode(in.Code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	if err := validateCouponInput(in); err != nil {
		return entities.Coupon{}, err
	}

	now := u.now().UTC()
	c := couponFromInput(in)
	c.Code = code
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Coupon{}, ErrCouponAlreadyExists
		}
		return entities.Coupon{}, err
	}
	u.logger.Info("[coupon][usecase] created", zap.String("coupon_code", created.Code))
	return created, nil
}

func (u *CouponUseCase) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	code = pricing.NormalizeCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	c, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if c.Code == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

func (u *CouponUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Coupon, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, ErrForbidden
	}
	return u.repo.List(ctx)
}

// Update replaces every field except the code, which is the identity of the coupon.
func (u *CouponUseCase) Update(ctx context.Context, actor entities.Actor, code string, in CouponInput) (entities.Coupon, error) {
	if !actor.Is(entities.RoleAdmin) {
		return entities.Coupon{}, ErrForbidden
	}
	existing, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if err := validateCouponInput(in); err != nil {
		return entities.Coupon{}, err
	}

	c := couponFromInput(in)
	c.Code = existing.Code
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Coupon{}, ErrCouponNotFound
		}
		return entities.Coupon{}, err
	}
	return updated, nil
}

func (u *CouponUseCase) Delete(ctx context.Context, actor entities.Actor, code string) error {
	if !actor.Is(entities.RoleAdmin) {
		return ErrForbidden
	}
	code = pricing.NormalizeCode(code)
	if code == "" {
		return ErrInvalidCouponCode
	}
	if err := u.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ErrCouponNotFound
		}
		return err
	}
	u.logger.Info("[coupon][usecase] deleted", zap.String("coupon_code", code))
	return nil
}

func (u *CouponUseCase) Validate(ctx context.Context, code string, serviceIDs []string) (CouponValidation, error) {
	if len(serviceIDs) == 0 {
		return CouponValidation{}, ErrNoServices
	}
	c, err := u.GetByCode(ctx, code)
	if err != nil {
		return CouponValidation{}, err
	}
	if !c.IsValidAt(u.now().UTC()) {
		return CouponValidation{}, pricing.ErrCouponInapplicable
	}

	applicable := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		service, err := u.catalog.GetServicePrice(ctx, id)
		if err != nil {
			return CouponValidation{}, err
		}
		if service.ServiceID == "" {
			continue
		}
		if _, ok := pricing.MatchRule(c, id, service.ApplicationTypeID); ok {
			applicable = append(applicable, id)
		}
	}
	if len(applicable) == 0 {
		return CouponValidation{}, pricing.ErrCouponInapplicable
	}

	return CouponValidation{
		CouponCode:           c.Code,
		DiscountPercentage:   c.DiscountPercentage,
		MaxDiscountAmount:    c.MaxDiscountAmount,
		ApplicableServiceIDs: applicable,
	}, nil
}

func validateCouponInput(in CouponInput) error {
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return ErrInvalidDiscount
	}
	if in.MaxDiscountAmount != nil && *in.MaxDiscountAmount < 0 {
		return ErrInvalidDiscountCap
	}
	if in.ValidFrom.After(in.ValidUntil) {
		return ErrInvalidValidityWindow
	}
	for _, r := range in.ApplicableTo {
		if strings.TrimSpace(r.ApplicationTypeID) == "" {
			return ErrInvalidCouponRules
		}
	}
	return nil
}

func couponFromInput(in CouponInput) entities.Coupon {
	rules := make([]entities.CouponRule, 0, len(in.ApplicableTo))
	for _, r := range in.ApplicableTo {
		ids := make([]string, 0, len(r.ServiceTypeIDs))
		for _, id := range r.ServiceTypeIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		rules = append(rules, entities.CouponRule{ApplicationTypeID: strings.TrimSpace(r.ApplicationTypeID), ServiceTypeIDs: ids})
	}
	return entities.Coupon{
		DiscountPercentage: in.DiscountPercentage,
		MaxDiscountAmount:  in.MaxDiscountAmount,
		ValidFrom:          in.ValidFrom.UTC(),
		ValidUntil:         in.ValidUntil.UTC(),
		IsActive:           in.IsActive,
		ApplicableTo:       rules,
	}
}
