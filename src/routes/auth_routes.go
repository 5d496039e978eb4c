package routes

import (
	"Backend-QuestForge/src/controllers"
	"Backend-QuestForge/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes wires the account endpoints
func AuthRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", controllers.RegisterUser)
	authRoutes.Post("/login", controllers.LoginUser)
	authRoutes.Post("/refresh", controllers.RefreshToken)
	authRoutes.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
