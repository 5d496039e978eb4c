package routes

import (
	"Backend-QuestForge/src/controllers"
	"Backend-QuestForge/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuestionRoutes wires the question editing endpoints. Reorder is declared
// before /:id so Fiber does not swallow it as a question id.
func QuestionRoutes(app *fiber.App) {
	questionRoutes := app.Group("/quests/:questId/questions", middleware.AuthJWT)
	questionRoutes.Post("/", controllers.CreateQuestion)
	questionRoutes.Put("/reorder", controllers.ReorderQuestions)
	questionRoutes.Put("/:id", controllers.UpdateQuestion)
	questionRoutes.Delete("/:id", controllers.DeleteQuestion)
	questionRoutes.Post("/:id/duplicate", controllers.DuplicateQuestion)
}
