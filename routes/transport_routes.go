package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTransportRoutes(app *fiber.App) {
	transportController := &controllers.TransportController{}

	api := app.Group(config.MAIN_ROUTES+"/transport", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(transportController))

	api.Get("/inward", transportController.GetInwardTransports)
	api.Get("/outward", transportController.GetOutwardTransports)

	api.Get("/reconciliation", transportController.GetReconciliation)
	api.Get("/urgency-summary", transportController.GetUrgencySummary)
	api.Get("/today", transportController.GetTodayDeliveries)
	api.Get("/jobs-ready", transportController.GetJobsReady)
	api.Get("/report/excel", transportController.ExportReconciliationExcel)

	api.Post("/inward/book", transportController.BookInward)
	api.Post("/inward/book-import", transportController.BookImport)
	api.Post("/outward/book", transportController.BookOutward)

	api.Put("/inward/:id/status", transportController.UpdateInwardStatus)
	api.Put("/outward/:id/status", transportController.UpdateOutwardStatus)
}
