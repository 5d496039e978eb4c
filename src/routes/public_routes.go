package routes

import (
	"Backend-QuestForge/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// PublicRoutes wires the respondent-facing endpoints. No auth here.
func PublicRoutes(app *fiber.App) {
	publicRoutes := app.Group("/public")
	publicRoutes.Get("/quests/:token", controllers.GetPublicQuest)
	publicRoutes.Post("/quests/:token/responses", controllers.SubmitResponse)
}
