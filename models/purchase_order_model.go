package models

import "gorm.io/gorm"

// Purchase order statuses
const (
	POStatusDraft     = "DRAFT"
	POStatusApproved  = "APPROVED"
	POStatusClosed    = "CLOSED"
	POStatusCancelled = "CANCELLED"
)

type PurchaseOrder struct {
	gorm.Model
	PONumber     string `json:"po_number" gorm:"unique"`
	SupplierCode string `json:"supplier_code"`
	SupplierName string `json:"supplier_name"`
	Status       string `json:"status" gorm:"default:'DRAFT'"`
	Incoterm     string `json:"incoterm"` // DDP, EXW, FOB, CFR

	// Set once a transport booking references this PO.
	TransportBooked bool   `json:"transport_booked" gorm:"not null;default:false"`
	TransportNumber string `json:"transport_number"`

	ProductSummary string  `json:"product_summary"`
	TotalQuantity  float64 `json:"total_quantity" gorm:"type:decimal(14,3);not null;default:0"`
	TotalUnit      string  `json:"total_unit"`

	// Dates kept as ISO strings, matching the wire format clients send.
	OrderDate        string `json:"order_date"`
	DeliveryDate     string `json:"delivery_date"`
	ExpectedDelivery string `json:"expected_delivery"`

	Items []PurchaseOrderItem `json:"items" gorm:"foreignKey:POID;references:ID"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type PurchaseOrderItem struct {
	gorm.Model
	POID      uint    `json:"po_id" gorm:"index"`
	PONumber  string  `json:"po_number"`
	ItemCode  string  `json:"item_code"`
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity" gorm:"type:decimal(14,3);not null;default:0"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(14,2);not null;default:0"`
	CreatedBy int
	UpdatedBy int
}
