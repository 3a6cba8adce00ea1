package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// NUMERIC in Postgres, scanned through ::text to avoid rounding errors
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	IsActive      bool            `json:"is_active"`
	CategoryID    int64           `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string `json:"name"        example:"Curing Light LED-B"`
	Description string `json:"description" example:"Wireless, 1500 mW/cm2"`
	Price       string `json:"price"       example:"249.90"`
	Stock       int    `json:"stock"       example:"10"`
	CategoryID  int64  `json:"category_id" example:"1"`
}

// UpdateProductRequest payload of partial update.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       *int   `json:"stock"`
	IsActive    *bool  `json:"is_active"`
	CategoryID  int64  `json:"category_id"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Q     string    `json:"q,omitempty"`
	Limit int       `json:"limit"`
	Items []Product `json:"items"`
}
