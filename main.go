package main

import (
	"log"

	"fiber-erp/config"
	"fiber-erp/controllers/idgen"
	"fiber-erp/database"
	"fiber-erp/logger"
	"fiber-erp/migration"
	"fiber-erp/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupSupplierRoutes(app)
	routes.SetupTransporterRoutes(app)
	routes.SetupTruckRoutes(app)
	routes.SetupPackagingRoutes(app)
	routes.SetupPurchaseOrderRoutes(app)
	routes.SetupJobOrderRoutes(app)
	routes.SetupImportRoutes(app)
	routes.SetupTransportRoutes(app)
	routes.SetupQuotationRoutes(app)

	logger.Info("Server listening on port " + config.APP_PORT)

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
