package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one user-product membership row.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`

	ProductName  string          `json:"product_name,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price,omitempty"`
}

// CategoryStat aggregates wishlisted products under one category name.
type CategoryStat struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}
