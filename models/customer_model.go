package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	CustomerCode    string `json:"customer_code" gorm:"unique"`
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	// Local customers are billed with VAT; export customers are not.
	IsLocal      bool   `json:"is_local" gorm:"not null;default:true"`
	TaxRegNumber string `json:"tax_reg_number"`
	PaymentTerms string `json:"payment_terms"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
