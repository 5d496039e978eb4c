package controllers

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/responses"
	"Backend-QuestForge/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPublicQuest godoc
// @Summary      Get a published quest by share token
// @Description  Respondent-facing view; questions are shuffled when the quest asks for it
// @Tags         public
// @Produce      json
// @Param        token path  string  true  "Share token"
// @Success      200  {object}  models.QuestWithQuestions
// @Failure      404  {object}  models.ErrorResponse
// @Router       /public/quests/{token} [get]
func GetPublicQuest(c *fiber.Ctx) error {
	token := c.Params("token")

	result, err := responses.GetPublicQuest(c.Context(), token)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
}

// SubmitResponse godoc
// @Summary      Submit a response to a published quest
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token path  string                       true  "Share token"
// @Param        body  body  models.SubmitResponseRequest true  "Answers"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /public/quests/{token}/responses [post]
func SubmitResponse(c *fiber.Ctx) error {
	token := c.Params("token")

	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := responses.SubmitResponse(c.Context(), token, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Response recorded",
		"data":    response,
	})
}
