package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// ProductResponse is the back-office projection of a product, including the
// tracked stock quantity and archival state.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	ImageURL         string          `json:"image_url"`
	HoverImageURL    string          `json:"hover_image_url,omitempty"`
	FeaturedImageURL string          `json:"featured_image_url,omitempty"`
	Badge            *string         `json:"badge,omitempty"`
	InStock          bool            `json:"in_stock"`
	Quantity         *int64          `json:"quantity,omitempty"`
	Archived         bool            `json:"archived"`
	ArchivedAt       *time.Time      `json:"archived_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ProductFromModel converts a domain product to its response shape.
func ProductFromModel(p *model.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Category:         p.Category,
		ImageURL:         p.ImageURL,
		HoverImageURL:    p.HoverImageURL,
		FeaturedImageURL: p.FeaturedImageURL,
		Badge:            p.Badge,
		InStock:          p.InStock,
		Quantity:         p.Quantity,
		Archived:         p.Archived,
		ArchivedAt:       p.ArchivedAt,
		CreatedAt:        p.CreatedAt,
	}
}

// ProductsFromModel converts a slice of domain products.
func ProductsFromModel(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *ProductFromModel(&products[i]))
	}
	return out
}

// PublicProductResponse is the storefront projection of a product. Stock
// quantities stay internal; shoppers only see the in_stock flag.
type PublicProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	ImageURL         string          `json:"image_url"`
	HoverImageURL    string          `json:"hover_image_url,omitempty"`
	FeaturedImageURL string          `json:"featured_image_url,omitempty"`
	Badge            *string         `json:"badge,omitempty"`
	InStock          bool            `json:"in_stock"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PublicProductFromModel converts a domain product to its storefront shape.
func PublicProductFromModel(p *model.Product) *PublicProductResponse {
	if p == nil {
		return nil
	}
	return &PublicProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Category:         p.Category,
		ImageURL:         p.ImageURL,
		HoverImageURL:    p.HoverImageURL,
		FeaturedImageURL: p.FeaturedImageURL,
		Badge:            p.Badge,
		InStock:          p.InStock,
		CreatedAt:        p.CreatedAt,
	}
}

// PublicProductsFromModel converts a slice of domain products.
func PublicProductsFromModel(products []model.Product) []PublicProductResponse {
	out := make([]PublicProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *PublicProductFromModel(&products[i]))
	}
	return out
}

// ProductRequest describes the admin create/update payload. Price arrives as
// a JSON number or string and is parsed exactly, never through float64.
type ProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	ImageURL         string          `json:"image_url"`
	HoverImageURL    string          `json:"hover_image_url"`
	FeaturedImageURL string          `json:"featured_image_url"`
	Badge            *string         `json:"badge"`
	InStock          bool            `json:"in_stock"`
	Quantity         *int64          `json:"quantity"`
}

// ProductsResponse lists back-office catalog entries.
type ProductsResponse struct {
	Response
	Products []ProductResponse `json:"products"`
}

// SingleProductResponse wraps one back-office catalog entry.
type SingleProductResponse struct {
	Response
	Product *ProductResponse `json:"product,omitempty"`
}

// PublicProductsResponse lists storefront catalog entries.
type PublicProductsResponse struct {
	Response
	Products []PublicProductResponse `json:"products"`
}

// SinglePublicProductResponse wraps one storefront catalog entry.
type SinglePublicProductResponse struct {
	Response
	Product *PublicProductResponse `json:"product,omitempty"`
}

// CreateProductResponse reports the identifier of a newly created product.
type CreateProductResponse struct {
	Response
	ID int64 `json:"id"`
}
