package controllers

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/analytics"
	"Backend-QuestForge/src/services/quests"
	"Backend-QuestForge/src/services/questions"
	"Backend-QuestForge/src/services/responses"
	"Backend-QuestForge/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateQuest godoc
// @Summary      Create a new quest
// @Description  Create a draft quest, optionally with initial questions
// @Tags         quests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateQuestRequest true "Quest and initial questions"
// @Success      201  {object}  models.QuestWithQuestions
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quests [post]
func CreateQuest(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req models.CreateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := quests.CreateQuest(c.Context(), ownerID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quest created successfully",
		"data":    result,
	})
}

// GetQuests godoc
// @Summary      List the caller's quests with pagination, search and sorting
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Param        search query  string  false  "Search term"
// @Param        sortBy query  string  false  "Field to sort by" default(updatedAt)
// @Param        order  query  string  false  "Sort order (asc or desc)" default(desc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quests [get]
func GetQuests(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	params := parsePagination(c)

	result, err := quests.GetQuests(c.Context(), ownerID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch quests")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetQuestByID godoc
// @Summary      Get a quest by ID with its questions
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {object}  models.QuestWithQuestions
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id} [get]
func GetQuestByID(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	result, err := quests.GetQuestWithQuestions(c.Context(), ownerID, questID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
}

// UpdateQuest godoc
// @Summary      Update quest metadata and settings
// @Tags         quests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string                    true  "Quest ID"
// @Param        body body  models.UpdateQuestRequest true  "Fields to update"
// @Success      200  {object}  models.Quest
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id} [put]
func UpdateQuest(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.UpdateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := quests.UpdateQuest(c.Context(), ownerID, questID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": updated})
}

// DeleteQuest godoc
// @Summary      Delete a quest and everything under it
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id} [delete]
func DeleteQuest(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := quests.DeleteQuest(c.Context(), ownerID, questID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Quest deleted successfully"})
}

// PublishQuest godoc
// @Summary      Publish a quest and open it for responses
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {object}  models.Quest
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id}/publish [post]
func PublishQuest(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	updated, err := quests.PublishQuest(c.Context(), ownerID, questID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": updated})
}

// UnpublishQuest godoc
// @Summary      Take a quest offline
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {object}  models.Quest
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id}/unpublish [post]
func UnpublishQuest(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	updated, err := quests.UnpublishQuest(c.Context(), ownerID, questID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": updated})
}

// GetQuestQRCode godoc
// @Summary      Get a QR code for the quest's public share URL
// @Description  PNG image encoding the respondent-facing link; the quest must be published
// @Tags         quests
// @Produce      png
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id}/qrcode [get]
func GetQuestQRCode(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	png, err := quests.ShareQRCode(c.Context(), ownerID, questID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// GetQuestSummary godoc
// @Summary      Get aggregated analytics for a quest
// @Description  Per-question frequency tables and answer previews plus totals
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Quest ID"
// @Success      200  {object}  models.QuestSummary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id}/summary [get]
func GetQuestSummary(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	// ownership gate before touching responses
	if _, err := quests.GetQuestByID(c.Context(), ownerID, questID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	qs, err := questions.GetQuestions(c.Context(), questID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	rs, err := responses.GetAllResponses(c.Context(), questID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	summary := analytics.BuildQuestSummary(qs, rs)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": summary})
}

// GetQuestResponses godoc
// @Summary      List a quest's raw responses, newest first
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "Quest ID"
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{id}/responses [get]
func GetQuestResponses(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	questID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if _, err := quests.GetQuestByID(c.Context(), ownerID, questID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	params := parsePagination(c)

	result, err := responses.GetResponses(c.Context(), questID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
