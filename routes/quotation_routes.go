package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupQuotationRoutes(app *fiber.App) {
	quotationController := &controllers.QuotationController{}

	api := app.Group(config.MAIN_ROUTES+"/quotations", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(quotationController))

	api.Post("/", quotationController.CreateQuotation)
	api.Post("/preview", quotationController.PreviewQuotation)
	api.Get("/", quotationController.GetAllQuotations)
	api.Get("/:id", quotationController.GetQuotationByID)
	api.Put("/:id", quotationController.UpdateQuotation)
	api.Put("/:id/status", quotationController.UpdateQuotationStatus)
}
