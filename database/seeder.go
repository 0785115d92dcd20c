package database

import (
	"fiber-erp/models"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders installs the baseline records an empty installation needs:
// roles, permissions, the admin user, and demo packaging configs.
func RunSeeders(db *gorm.DB) {
	seedRolesAndPermissions(db)
	seedAdminUser(db)
	seedPackagingConfigs(db)
}

func seedRolesAndPermissions(db *gorm.DB) {
	permissions := []models.Permission{
		{Name: "view_transport", Description: "View transport lanes and reconciliation"},
		{Name: "book_transport", Description: "Create transport bookings"},
		{Name: "update_transport_status", Description: "Move bookings through their lifecycle"},
		{Name: "manage_quotations", Description: "Create and update quotations"},
		{Name: "manage_masters", Description: "Maintain products, customers, suppliers, transporters"},
		{Name: "manage_users", Description: "Maintain users and roles"},
	}
	for _, p := range permissions {
		db.Where(models.Permission{Name: p.Name}).FirstOrCreate(&p)
	}

	var all []models.Permission
	db.Find(&all)

	admin := models.Role{Name: "admin", Description: "Full access"}
	db.Where(models.Role{Name: "admin"}).FirstOrCreate(&admin)
	db.Model(&admin).Association("Permissions").Replace(all)

	var opsPerms []models.Permission
	db.Where("name IN ?", []string{"view_transport", "book_transport", "update_transport_status"}).Find(&opsPerms)
	ops := models.Role{Name: "operations", Description: "Transport booking and tracking"}
	db.Where(models.Role{Name: "operations"}).FirstOrCreate(&ops)
	db.Model(&ops).Association("Permissions").Replace(opsPerms)

	var salesPerms []models.Permission
	db.Where("name IN ?", []string{"manage_quotations", "view_transport"}).Find(&salesPerms)
	sales := models.Role{Name: "sales", Description: "Quotations"}
	db.Where(models.Role{Name: "sales"}).FirstOrCreate(&sales)
	db.Model(&sales).Association("Permissions").Replace(salesPerms)
}

func seedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Failed to hash admin password:", err)
		return
	}

	var adminRole models.Role
	db.Where("name = ?", "admin").First(&adminRole)

	user := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@localhost",
		Role:     "admin",
		Roles:    []models.Role{adminRole},
	}
	db.Create(&user)
}

func seedPackagingConfigs(db *gorm.DB) {
	var count int64
	db.Model(&models.ProductPackagingConfig{}).Count(&count)
	if count > 0 {
		return
	}

	configs := []models.ProductPackagingConfig{
		{PackagingName: "200L Drum", ContainerType: "20ft", NetWeightKG: 200, UnitsPerContainer: 80},
		{PackagingName: "1000L IBC", ContainerType: "20ft", NetWeightKG: 1000, UnitsPerContainer: 20},
		{PackagingName: "Flexi Tank", ContainerType: "20ft", NetWeightKG: 0, UnitsPerContainer: 1, DensityKgPerL: 0.9},
		{PackagingName: "ISO Tank", ContainerType: "iso_tank", NetWeightKG: 0, UnitsPerContainer: 1, DensityKgPerL: 0.9},
	}
	for _, c := range configs {
		db.Create(&c)
	}
}
