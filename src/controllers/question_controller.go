package controllers

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/quests"
	"Backend-QuestForge/src/services/questions"
	"Backend-QuestForge/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// questFromParams enforces the ownership gate shared by every question
// endpoint: the quest must exist and belong to the caller. On failure the
// error response is already written and ok is false.
func questFromParams(c *fiber.Ctx) (primitive.ObjectID, bool) {
	ownerID, ok := currentUserID(c.Locals("userId"))
	if !ok {
		_ = utils.HandleError(c, fiber.StatusUnauthorized, "Not authenticated")
		return primitive.NilObjectID, false
	}

	questID, err := parseObjectID(c.Params("questId"))
	if err != nil {
		_ = utils.HandleError(c, fiber.StatusBadRequest, "Invalid quest ID format")
		return primitive.NilObjectID, false
	}

	if _, err := quests.GetQuestByID(c.Context(), ownerID, questID); err != nil {
		_ = utils.HandleServiceError(c, err)
		return primitive.NilObjectID, false
	}
	return questID, true
}

// CreateQuestion godoc
// @Summary      Add a question to the end of a quest
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        questId path  string                       true  "Quest ID"
// @Param        body    body  models.CreateQuestionRequest true  "Question"
// @Success      201  {object}  models.Question
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{questId}/questions [post]
func CreateQuestion(c *fiber.Ctx) error {
	questID, ok := questFromParams(c)
	if !ok {
		return nil
	}

	var req models.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	question, err := questions.CreateQuestion(c.Context(), questID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": question})
}

// UpdateQuestion godoc
// @Summary      Update a question's content
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        questId path  string                       true  "Quest ID"
// @Param        id      path  string                       true  "Question ID"
// @Param        body    body  models.UpdateQuestionRequest true  "Fields to update"
// @Success      200  {object}  models.Question
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{questId}/questions/{id} [put]
func UpdateQuestion(c *fiber.Ctx) error {
	questID, ok := questFromParams(c)
	if !ok {
		return nil
	}

	questionID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format")
	}

	var req models.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	question, err := questions.UpdateQuestion(c.Context(), questID, questionID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": question})
}

// DeleteQuestion godoc
// @Summary      Delete a question and renumber the rest
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        questId path  string  true  "Quest ID"
// @Param        id      path  string  true  "Question ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{questId}/questions/{id} [delete]
func DeleteQuestion(c *fiber.Ctx) error {
	questID, ok := questFromParams(c)
	if !ok {
		return nil
	}

	questionID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format")
	}

	if err := questions.DeleteQuestion(c.Context(), questID, questionID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Question deleted successfully"})
}

// ReorderQuestions godoc
// @Summary      Rewrite the quest's question order
// @Description  The id list must be a permutation of the quest's questions
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        questId path  string                true  "Quest ID"
// @Param        body    body  models.ReorderRequest true  "Full desired question id sequence"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{questId}/questions/reorder [put]
func ReorderQuestions(c *fiber.Ctx) error {
	questID, ok := questFromParams(c)
	if !ok {
		return nil
	}

	var req models.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := questions.ReorderQuestions(c.Context(), questID, req.QuestionIDs); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Questions reordered successfully"})
}

// DuplicateQuestion godoc
// @Summary      Duplicate a question directly after the original
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        questId path  string  true  "Quest ID"
// @Param        id      path  string  true  "Question ID"
// @Success      201  {object}  models.Question
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quests/{questId}/questions/{id}/duplicate [post]
func DuplicateQuestion(c *fiber.Ctx) error {
	questID, ok := questFromParams(c)
	if !ok {
		return nil
	}

	questionID, err := parseObjectID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID format")
	}

	duplicate, err := questions.DuplicateQuestion(c.Context(), questID, questionID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": duplicate})
}
