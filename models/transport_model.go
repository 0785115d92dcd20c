package models

import (
	"fiber-erp/types"

	"gorm.io/gorm"
)

// Inward transport sources (which lane the booking belongs to)
const (
	TransportSourcePODDP  = "PO_DDP"
	TransportSourcePOEXW  = "PO_EXW"
	TransportSourceImport = "IMPORT"
)

// Outward transport sources
const (
	TransportSourceLocal     = "LOCAL"
	TransportSourceContainer = "CONTAINER"
)

// InwardTransport is a booked inland transport bringing purchased goods in,
// either directly from a supplier (DDP/EXW purchase) or from the port
// (import shipment).
type InwardTransport struct {
	gorm.Model
	// RefID is the client-facing identifier, snowflake-generated so it is
	// unique across installations and safe in JSON (string-marshalled).
	RefID           types.SnowflakeID `json:"ref_id" gorm:"uniqueIndex"`
	TransportNumber string            `json:"transport_number" gorm:"unique"`
	Source          string            `json:"source"` // PO_DDP, PO_EXW, IMPORT

	POID         uint   `json:"po_id" gorm:"index"`
	PONumber     string `json:"po_number"`
	ImportID     uint   `json:"import_id" gorm:"index"`
	ImportNumber string `json:"import_number"`
	SupplierName string `json:"supplier_name"`

	ProductSummary string  `json:"product_summary"`
	TotalQuantity  float64 `json:"total_quantity" gorm:"type:decimal(14,3);not null;default:0"`
	TotalUnit      string  `json:"total_unit"`

	Status string `json:"status" gorm:"default:'PENDING'"`

	TransporterCode string `json:"transporter_code"`
	TruckNo         string `json:"truck_no"`
	DriverName      string `json:"driver_name"`

	DispatchDate     string `json:"dispatch_date"`
	ETA              string `json:"eta"`
	DeliveryDate     string `json:"delivery_date"`
	ExpectedDelivery string `json:"expected_delivery"`

	// Rows created by system jobs (e.g. migration backfill) are excluded
	// from dispatch balance computations.
	AutoCreated bool `json:"auto_created" gorm:"not null;default:false"`

	Items []InwardTransportItem `json:"items" gorm:"foreignKey:TransportID;references:ID"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type InwardTransportItem struct {
	gorm.Model
	TransportID uint    `json:"transport_id" gorm:"index"`
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity" gorm:"type:decimal(14,3);not null;default:0"`
	Unit        string  `json:"unit"`
}

// OutwardTransport is a booked dispatch against a job order, either a local
// delivery or an export container movement.
type OutwardTransport struct {
	gorm.Model
	RefID           types.SnowflakeID `json:"ref_id" gorm:"uniqueIndex"`
	TransportNumber string            `json:"transport_number" gorm:"unique"`
	Source          string            `json:"source"` // LOCAL, CONTAINER

	JobOrderID   uint   `json:"job_order_id" gorm:"index"`
	JobNumber    string `json:"job_number"`
	CustomerName string `json:"customer_name"`

	ProductSummary string  `json:"product_summary"`
	TotalQuantity  float64 `json:"total_quantity" gorm:"type:decimal(14,3);not null;default:0"`
	TotalUnit      string  `json:"total_unit"`

	ContainerCount int    `json:"container_count" gorm:"not null;default:0"`
	ContainerType  string `json:"container_type"`

	Status string `json:"status" gorm:"default:'PENDING'"`

	TransporterCode string `json:"transporter_code"`
	TruckNo         string `json:"truck_no"`
	DriverName      string `json:"driver_name"`

	DispatchDate     string `json:"dispatch_date"`
	ETA              string `json:"eta"`
	DeliveryDate     string `json:"delivery_date"`
	ExpectedDelivery string `json:"expected_delivery"`

	AutoCreated bool `json:"auto_created" gorm:"not null;default:false"`

	Items []OutwardTransportItem `json:"items" gorm:"foreignKey:TransportID;references:ID"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type OutwardTransportItem struct {
	gorm.Model
	TransportID uint    `json:"transport_id" gorm:"index"`
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity" gorm:"type:decimal(14,3);not null;default:0"`
	Unit        string  `json:"unit"`
}
