package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTransporterRoutes(app *fiber.App) {
	transporterController := &controllers.TransporterController{}

	api := app.Group(config.MAIN_ROUTES+"/transporters", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(transporterController))

	api.Post("/", transporterController.CreateTransporter)
	api.Get("/", transporterController.GetAllTransporter)
	api.Get("/:id", transporterController.GetTransporterByID)
	api.Put("/:id", transporterController.UpdateTransporter)
}
