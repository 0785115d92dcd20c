package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPurchaseOrderRoutes(app *fiber.App) {
	poController := &controllers.PurchaseOrderController{}

	api := app.Group(config.MAIN_ROUTES+"/purchase-orders", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(poController))

	api.Post("/", poController.CreatePurchaseOrder)
	api.Get("/", poController.GetAllPurchaseOrders)
	api.Get("/:id", poController.GetPurchaseOrderByID)
	api.Put("/:id/status", poController.UpdatePurchaseOrderStatus)
}

func SetupJobOrderRoutes(app *fiber.App) {
	jobController := &controllers.JobOrderController{}

	api := app.Group(config.MAIN_ROUTES+"/job-orders", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(jobController))

	api.Post("/", jobController.CreateJobOrder)
	api.Get("/", jobController.GetAllJobOrders)
	api.Get("/:id", jobController.GetJobOrderByID)
	api.Put("/:id/status", jobController.UpdateJobOrderStatus)
}

func SetupImportRoutes(app *fiber.App) {
	importController := &controllers.ImportController{}

	api := app.Group(config.MAIN_ROUTES+"/imports", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(importController))

	api.Post("/", importController.CreateImportShipment)
	api.Get("/", importController.GetAllImportShipments)
	api.Get("/:id", importController.GetImportShipmentByID)
	api.Put("/:id/status", importController.UpdateImportStatus)
}
