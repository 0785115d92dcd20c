package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierCode    string `json:"supplier_code" gorm:"unique"`
	SupplierName    string `json:"supplier_name"`
	SupplierAddress string `json:"supplier_address"`
	Country         string `json:"country"`
	DefaultIncoterm string `json:"default_incoterm"` // DDP, EXW, FOB, CFR
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
