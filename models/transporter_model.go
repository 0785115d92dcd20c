package models

import "gorm.io/gorm"

type Transporter struct {
	gorm.Model
	TransporterCode    string `json:"transporter_code" gorm:"unique"`
	TransporterName    string `json:"transporter_name" gorm:"unique"`
	TransporterAddress string `json:"transporter_address"`
	ContactName        string `json:"contact_name"`
	ContactPhone       string `json:"contact_phone"`
	CreatedBy          int
	UpdatedBy          int
	DeletedBy          int
}
