package models

import "gorm.io/gorm"

// ProductPackagingConfig maps a product and packaging (optionally per
// container type) to its net weight and fill counts. The pricing engine
// consumes this through the lookup endpoint.
type ProductPackagingConfig struct {
	gorm.Model
	ProductID     uint   `json:"product_id" gorm:"index"`
	ItemCode      string `json:"item_code" gorm:"index"`
	PackagingName string `json:"packaging_name" gorm:"index"`
	ContainerType string `json:"container_type"`

	NetWeightKG       float64 `json:"net_weight_kg" gorm:"type:decimal(10,3);not null;default:0"`
	UnitsPerContainer int     `json:"units_per_container" gorm:"not null;default:0"`
	DensityKgPerL     float64 `json:"density_kg_per_l" gorm:"type:decimal(10,4);not null;default:0"`

	IsActive bool `json:"is_active" gorm:"not null;default:true"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
