package models

import "time"

// Product lifecycle statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UnlimitedStock marks a product whose availability check always passes.
const UnlimitedStock = -1

// Product represents a catalog item. The same struct is persisted by every
// store backend: bson tags drive MongoDB, gorm tags drive the SQL backends.
type Product struct {
	ID            string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Name          string    `json:"name" bson:"name" validate:"required"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price" validate:"gte=0"`
	OriginalPrice *float64  `json:"original_price" bson:"original_price,omitempty" validate:"omitempty,gte=0"`
	Stock         int       `json:"stock" bson:"stock" validate:"gte=-1"`
	Category      string    `json:"category" bson:"category" gorm:"index" validate:"required"`
	Image         string    `json:"image" bson:"image" validate:"required"`
	Images        []string  `json:"images" bson:"images" gorm:"serializer:json"`
	Tags          []string  `json:"tags" bson:"tags" gorm:"serializer:json"`
	Rating        float64   `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Reviews       int       `json:"reviews" bson:"reviews" validate:"gte=0"`
	SKU           string    `json:"sku" bson:"sku" validate:"required"`
	Status        string    `json:"status" bson:"status" gorm:"index;type:varchar(16)" validate:"oneof=active inactive"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// IsActive reports whether the product is visible in listings.
func (p Product) IsActive() bool {
	return p.Status == StatusActive
}

// HasStockFor reports whether quantity units can be taken from the product.
func (p Product) HasStockFor(quantity int) bool {
	return p.Stock == UnlimitedStock || p.Stock >= quantity
}
