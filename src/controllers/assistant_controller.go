package controllers

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/assistant"
	"Backend-QuestForge/src/utils"

	"github.com/gofiber/fiber/v2"
)

// DraftQuest godoc
// @Summary      Draft a quest with the AI assistant
// @Description  Returns a quest payload ready for the create endpoint
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.DraftRequest true "Brief"
// @Success      200  {object}  models.QuestDraft
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /assistant/draft [post]
func DraftQuest(c *fiber.Ctx) error {
	if _, ok := currentUserID(c.Locals("userId")); !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req models.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	draft, err := assistant.DraftQuest(c.Context(), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": draft})
}

// CreateBackground godoc
// @Summary      Queue background image generation for a quest
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.BackgroundRequest true "Quest id and prompt"
// @Success      202  {object}  models.BackgroundJob
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assistant/background [post]
func CreateBackground(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req models.BackgroundRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	job, err := assistant.EnqueueBackground(c.Context(), ownerID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": job})
}

// GetBackgroundJob godoc
// @Summary      Get the state of a background image job
// @Tags         assistant
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Job ID"
// @Success      200  {object}  models.BackgroundJob
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assistant/background/{id} [get]
func GetBackgroundJob(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	job, err := assistant.GetBackgroundJob(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": job})
}

// GetBackgroundImage godoc
// @Summary      Serve a generated background image
// @Description  Public: respondents load quest backgrounds through this
// @Tags         assistant
// @Produce      png
// @Param        id   path  string  true  "Job ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /assistant/background/{id}/image [get]
func GetBackgroundImage(c *fiber.Ctx) error {
	image, mime, err := assistant.GetBackgroundImage(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, mime)
	return c.Send(image)
}
