package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {
	customerController := &controllers.CustomerController{}

	api := app.Group(config.MAIN_ROUTES+"/customers", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(customerController))

	api.Post("/", customerController.CreateCustomer)
	api.Get("/", customerController.GetAllCustomers)
	api.Get("/:id", customerController.GetCustomerByID)
	api.Put("/:id", customerController.UpdateCustomer)
}
