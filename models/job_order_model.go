package models

import "gorm.io/gorm"

// Job order statuses
const (
	JobStatusOpen             = "open"
	JobStatusProcessing       = "processing"
	JobStatusReadyForDispatch = "ready_for_dispatch"
	JobStatusDispatched       = "dispatched"
	JobStatusCompleted        = "completed"
)

type JobOrder struct {
	gorm.Model
	JobNumber    string `json:"job_number" gorm:"unique"`
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status" gorm:"default:'open'"`
	OrderType    string `json:"order_type"` // local, export
	Incoterm     string `json:"incoterm"`

	ProductSummary string  `json:"product_summary"`
	TotalWeightMT  float64 `json:"total_weight_mt" gorm:"type:decimal(14,3);not null;default:0"`

	// Container fields present only for export container jobs; a job with
	// either field set is routed to the EXPORT_CONTAINER lane.
	ContainerCount int    `json:"container_count" gorm:"not null;default:0"`
	ContainerType  string `json:"container_type"`

	TransportBooked bool   `json:"transport_booked" gorm:"not null;default:false"`
	TransportNumber string `json:"transport_number"`

	DeliveryDate     string `json:"delivery_date"`
	ExpectedDelivery string `json:"expected_delivery"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
