package models

import "gorm.io/gorm"

// Import shipment statuses (pre-booking leg)
const (
	ImportStatusShipped = "SHIPPED"
	ImportStatusAtPort  = "AT_PORT"
	ImportStatusArrived = "ARRIVED"
	ImportStatusCleared = "CLEARED"
)

// ImportShipment is an FOB/CFR purchase travelling by sea. Once it reaches
// the port it becomes a candidate for inland transport booking on the
// INWARD_IMPORT lane.
type ImportShipment struct {
	gorm.Model
	ImportNumber string `json:"import_number" gorm:"unique"`
	POID         uint   `json:"po_id" gorm:"index"`
	PONumber     string `json:"po_number"`
	SupplierCode string `json:"supplier_code"`
	SupplierName string `json:"supplier_name"`
	BLNumber     string `json:"bl_number"`
	Status       string `json:"status" gorm:"default:'SHIPPED'"`

	ProductSummary string  `json:"product_summary"`
	TotalQuantity  float64 `json:"total_quantity" gorm:"type:decimal(14,3);not null;default:0"`
	// Note: imports carry total_uom where purchase orders carry total_unit.
	// The unit resolver in services handles the fallthrough.
	TotalUom string `json:"total_uom"`

	ETA              string `json:"eta"`
	ExpectedDelivery string `json:"expected_delivery"`

	TransportBooked bool   `json:"transport_booked" gorm:"not null;default:false"`
	TransportNumber string `json:"transport_number"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
