package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the electronics catalog.
// Stock is mutated only through the repository's stock-adjustment
// operations, never written directly by order placement.
type Product struct {
	ID            string              `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string              `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Brand         string              `json:"brand" validate:"omitempty,max=100"`
	Price         decimal.Decimal     `json:"price" gorm:"type:decimal(12,2)"`
	OriginalPrice decimal.NullDecimal `json:"original_price,omitempty" gorm:"type:decimal(12,2)"`
	Category      string              `json:"category" validate:"omitempty,max=100"`
	Description   string              `json:"description" validate:"omitempty,max=500"`
	ImageURL      string              `json:"image_url" validate:"omitempty,url"`
	Stock         int                 `json:"stock" validate:"gte=0"`
	Rating        float64             `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int                 `json:"review_count" validate:"gte=0"`
	IsFeatured    bool                `json:"is_featured"`
	gorm.Model    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
