package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Quantity is nil for untracked stock: such
// products are never blocked by quantity checks and never decremented.
type Product struct {
	ID               int64
	Name             string
	Description      string
	Price            decimal.Decimal
	Category         string
	ImageURL         string
	HoverImageURL    string
	FeaturedImageURL string
	Badge            *string
	InStock          bool
	Quantity         *int64
	Archived         bool
	ArchivedAt       *time.Time
	CreatedAt        time.Time
}
