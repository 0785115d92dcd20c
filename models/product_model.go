package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ItemCode string `json:"item_code" gorm:"unique"`
	ItemName string `json:"item_name"`
	Category string `json:"category"`
	Group    string `json:"group"`
	HSCode   string `json:"hs_code"`

	// Pricing basis: all products are quoted from a base price per metric ton.
	BasePricePerMT float64 `json:"base_price_per_mt" gorm:"type:decimal(14,2);not null;default:0"`
	Currency       string  `json:"currency" gorm:"default:'USD'"`

	// Density in kg per liter, used when pricing per_liter packaging.
	// Zero means unknown.
	DensityKgPerL float64 `json:"density_kg_per_l" gorm:"type:decimal(10,4);not null;default:0"`

	DefaultUom string `json:"default_uom"`
	IsActive   bool   `json:"is_active" gorm:"not null;default:true"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
