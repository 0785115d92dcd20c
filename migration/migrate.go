package migration

import (
	"fiber-erp/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},

		&models.Product{},
		&models.Customer{},
		&models.Supplier{},
		&models.Transporter{},
		&models.Truck{},
		&models.ProductPackagingConfig{},

		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.JobOrder{},
		&models.ImportShipment{},

		&models.InwardTransport{},
		&models.InwardTransportItem{},
		&models.OutwardTransport{},
		&models.OutwardTransportItem{},

		&models.Quotation{},
		&models.QuotationItem{},
	)
}
