package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App) {
	supplierController := &controllers.SupplierController{}

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(supplierController))

	api.Post("/", supplierController.CreateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
}
