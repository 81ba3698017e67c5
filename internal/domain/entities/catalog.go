package entities

import "time"

// ServiceSnapshot is the read-only view of a catalog service type used for pricing.
//
// Price is kept as the raw catalog value: the catalog stores it as free text, so it may be
// empty or non-numeric.
type ServiceSnapshot struct {
	ServiceID          string
	Name               string
	Image              string
	MainServiceID      string
	ApplicationTypeID  string
	Price              string
	DiscountPercentage float64
	DiscountValidUntil *time.Time
	IsActive           bool
}

type RateCardType string

const (
	RateCardTypePart    RateCardType = "Part"
	RateCardTypeService RateCardType = "Service"
	RateCardTypeLabor   RateCardType = "Labor"
)

// RateCardEntry is a catalog line item used to build quotations.
type RateCardEntry struct {
	ID                string
	ApplicationTypeID string
	Name              string
	Type              RateCardType
	Price             float64
	IsActive          bool
}
