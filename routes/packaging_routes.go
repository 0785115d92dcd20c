package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPackagingRoutes(app *fiber.App) {
	packagingController := &controllers.PackagingController{}

	api := app.Group(config.MAIN_ROUTES+"/product-packaging-configs", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(packagingController))

	api.Get("/", packagingController.GetAll)
	api.Get("/lookup", packagingController.Lookup)
	api.Post("/", packagingController.Create)
	api.Post("/upload-excel", packagingController.CreateFromExcel)
	api.Put("/:id", packagingController.Update)
	api.Delete("/:id", packagingController.Delete)
}
