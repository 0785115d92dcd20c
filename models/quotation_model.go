package models

import (
	"fiber-erp/types"

	"gorm.io/gorm"
)

// Quotation statuses
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

type Quotation struct {
	gorm.Model
	RefID           types.SnowflakeID `json:"ref_id" gorm:"uniqueIndex"`
	QuotationNumber string            `json:"quotation_number" gorm:"unique"`
	CustomerCode    string            `json:"customer_code"`
	CustomerName    string            `json:"customer_name"`
	Status          string            `json:"status" gorm:"default:'draft'"`

	OrderType string `json:"order_type"` // local, export
	Incoterm  string `json:"incoterm"`
	Currency  string `json:"currency" gorm:"default:'USD'"`

	ContainerType  string `json:"container_type"`
	ContainerCount int    `json:"container_count" gorm:"not null;default:0"`

	VatEnabled        bool    `json:"vat_enabled" gorm:"not null;default:false"`
	FreightRatePerFCL float64 `json:"freight_rate_per_fcl" gorm:"type:decimal(14,2);not null;default:0"`

	// Persisted results of the pricing engine. The engine is authoritative;
	// these are recomputed on every create/update, never trusted from input.
	Subtotal          float64 `json:"subtotal" gorm:"type:decimal(14,2);not null;default:0"`
	VatAmount         float64 `json:"vat_amount" gorm:"type:decimal(14,2);not null;default:0"`
	GrandTotal        float64 `json:"grand_total" gorm:"type:decimal(14,2);not null;default:0"`
	AdditionalFreight float64 `json:"additional_freight" gorm:"type:decimal(14,2);not null;default:0"`
	TotalReceivable   float64 `json:"total_receivable" gorm:"type:decimal(14,2);not null;default:0"`
	TotalWeightMT     float64 `json:"total_weight_mt" gorm:"type:decimal(14,3);not null;default:0"`

	ValidUntil string `json:"valid_until"`
	Remarks    string `json:"remarks"`

	Items []QuotationItem `json:"items" gorm:"foreignKey:QuotationID;references:ID"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type QuotationItem struct {
	gorm.Model
	QuotationID uint `json:"quotation_id" gorm:"index"`

	ProductID uint   `json:"product_id"`
	ItemCode  string `json:"item_code"`
	ItemName  string `json:"item_name"`

	PackagingName string `json:"packaging"`
	// Container assignment for export mixed loading (1-based).
	ContainerNumber int `json:"container_number" gorm:"not null;default:0"`

	Uom         string  `json:"uom"` // per_unit, per_liter, per_mt
	Quantity    float64 `json:"quantity" gorm:"type:decimal(14,3);not null;default:0"`
	NetWeightKG float64 `json:"net_weight_kg" gorm:"type:decimal(10,3);not null;default:0"`

	// Base price per MT is retained across packaging switches so that the
	// displayed unit price can always be rederived losslessly.
	BasePricePerMT float64 `json:"base_price_per_mt" gorm:"type:decimal(14,2);not null;default:0"`
	UnitPrice      float64 `json:"unit_price" gorm:"type:decimal(14,4);not null;default:0"`

	WeightMT float64 `json:"weight_mt" gorm:"type:decimal(14,3);not null;default:0"`
	Total    float64 `json:"total" gorm:"type:decimal(14,2);not null;default:0"`
}
