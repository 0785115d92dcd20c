package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productController := &controllers.ProductController{}

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(productController))

	api.Post("/", productController.CreateProduct)
	api.Get("/", productController.GetAllProducts)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
}
