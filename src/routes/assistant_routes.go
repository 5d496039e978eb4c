package routes

import (
	"Backend-QuestForge/src/controllers"
	"Backend-QuestForge/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AssistantRoutes wires the AI assistant endpoints. The image itself is
// public so quest backgrounds render for respondents.
func AssistantRoutes(app *fiber.App) {
	assistantRoutes := app.Group("/assistant")
	assistantRoutes.Post("/draft", middleware.AuthJWT, controllers.DraftQuest)
	assistantRoutes.Post("/background", middleware.AuthJWT, controllers.CreateBackground)
	assistantRoutes.Get("/background/:id", middleware.AuthJWT, controllers.GetBackgroundJob)
	assistantRoutes.Get("/background/:id/image", controllers.GetBackgroundImage)
}
