package models

import "gorm.io/gorm"

type Truck struct {
	gorm.Model
	TruckNo         string  `json:"truck_no" gorm:"unique"`
	TruckType       string  `json:"truck_type"` // flatbed, curtain, bulk_tanker, container_chassis
	CapacityMT      float64 `json:"capacity_mt" gorm:"type:decimal(10,3);not null;default:0"`
	TransporterCode string  `json:"transporter_code"`
	DriverName      string  `json:"driver_name"`
	DriverPhone     string  `json:"driver_phone"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
