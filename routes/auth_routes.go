package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authController := &controllers.AuthController{}

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Use(middleware.InjectDBMiddleware(authController))
	api.Post("/login", authController.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Use(middleware.InjectDBMiddleware(authController))
	apiAuth.Get("/logout", authController.Logout)
	apiAuth.Get("/isLoggedIn", authController.IsLoggedIn)
}
