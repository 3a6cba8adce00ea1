package order

// CreateOrderItem is one requested line. UnitPrice is accepted for wire
// compatibility with older clients but the authoritative catalog price is
// re-read server-side; the client value is never persisted.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID int64  `json:"product_id" example:"7"`
	Quantity  int    `json:"quantity"   example:"2"`
	UnitPrice string `json:"unit_price,omitempty" example:"10.00"`
}

// CreateOrderRequest payload de creación de orden.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	PaymentMethod      string `json:"payment_method" example:"card"`
	ShippingAddress    string `json:"shipping_address"`
	ShippingCity       string `json:"shipping_city"`
	ShippingPostalCode string `json:"shipping_postal_code"`
	ShippingCountry    string `json:"shipping_country"`
	BillingAddress     string `json:"billing_address,omitempty"`
	BillingCity        string `json:"billing_city,omitempty"`
	BillingPostalCode  string `json:"billing_postal_code,omitempty"`
	BillingCountry     string `json:"billing_country,omitempty"`
	Notes              string `json:"notes,omitempty"`

	Items []CreateOrderItem `json:"items"`
}

// UpdateOrderRequest is the admin partial update payload.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Status         string `json:"status,omitempty"`
	PaymentStatus  string `json:"payment_status,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ListQuery are the admin listing filters. Zero values mean "no filter".
type ListQuery struct {
	UserID int64
	Status Status
	Page   int
	Limit  int
}
