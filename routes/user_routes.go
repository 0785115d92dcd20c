package routes

import (
	"fiber-erp/config"
	"fiber-erp/controllers"
	"fiber-erp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userController := &controllers.UserController{}

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(userController))

	api.Post("/", userController.CreateUser)
	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Delete("/:id", userController.DeleteUser)
}
