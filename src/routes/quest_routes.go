package routes

import (
	"Backend-QuestForge/src/controllers"
	"Backend-QuestForge/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuestRoutes wires the owner-facing quest endpoints
func QuestRoutes(app *fiber.App) {
	questRoutes := app.Group("/quests", middleware.AuthJWT)
	questRoutes.Get("/", controllers.GetQuests)          // list own quests
	questRoutes.Post("/", controllers.CreateQuest)       // create a draft
	questRoutes.Get("/:id", controllers.GetQuestByID)    // quest + questions
	questRoutes.Put("/:id", controllers.UpdateQuest)     // edit metadata
	questRoutes.Delete("/:id", controllers.DeleteQuest)  // cascade delete
	questRoutes.Post("/:id/publish", controllers.PublishQuest)
	questRoutes.Post("/:id/unpublish", controllers.UnpublishQuest)
	questRoutes.Get("/:id/qrcode", controllers.GetQuestQRCode)
	questRoutes.Get("/:id/summary", controllers.GetQuestSummary)
	questRoutes.Get("/:id/responses", controllers.GetQuestResponses)
}
