package models

// CartItem is a proposed cart addition. It is never persisted.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartConfirmation is returned when a cart addition passes the stock check.
type CartConfirmation struct {
	Message  string `json:"message"`
	Product  string `json:"product"` // product name
	Quantity int    `json:"quantity"`
}

// CartItemAddedEvent is published after a successful stock check.
type CartItemAddedEvent struct {
	EventID    string  `json:"event_id"`
	ProductID  string  `json:"product_id"`
	SKU        string  `json:"sku"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	OccurredAt string  `json:"occurred_at"`
}
