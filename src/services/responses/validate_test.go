package responses

import (
	"testing"

	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func question(id primitive.ObjectID, qType models.QuestionType, required bool, options ...string) models.Question {
	q := models.Question{ID: id, Type: qType, Title: "Q-" + id.Hex()[:6], IsRequired: required}
	for _, opt := range options {
		q.Options = append(q.Options, models.Option{Value: opt})
	}
	return q
}

func TestBuildAnswers(t *testing.T) {
	textID := primitive.NewObjectID()
	choiceID := primitive.NewObjectID()
	checkID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	questions := []models.Question{
		question(textID, models.QuestionShortText, true),
		question(choiceID, models.QuestionMultipleChoice, false, "Red", "Blue"),
		question(checkID, models.QuestionCheckboxes, false, "A", "B"),
		question(videoID, models.QuestionVideo, false, "https://x/clip.mp4"),
	}

	t.Run("ValidSubmissionBuilds", func(t *testing.T) {
		answers, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("fine")},
			{QuestionID: choiceID.Hex(), Value: models.ScalarAnswer("Red")},
			{QuestionID: checkID.Hex(), Value: models.ListAnswer("A", "B")},
		})
		require.NoError(t, err)
		require.Len(t, answers, 3)
		assert.Equal(t, textID, answers[0].QuestionID)
		assert.Equal(t, []string{"A", "B"}, answers[2].Value.Values())
	})

	t.Run("UnknownQuestionRejected", func(t *testing.T) {
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("fine")},
			{QuestionID: primitive.NewObjectID().Hex(), Value: models.ScalarAnswer("?")},
		})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("DuplicateAnswerRejected", func(t *testing.T) {
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("one")},
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("two")},
		})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("MediaQuestionTakesNoAnswer", func(t *testing.T) {
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("fine")},
			{QuestionID: videoID.Hex(), Value: models.ScalarAnswer("watched")},
		})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("MissingRequiredRejected", func(t *testing.T) {
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: choiceID.Hex(), Value: models.ScalarAnswer("Red")},
		})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("BlankRequiredStillRejected", func(t *testing.T) {
		// An empty value is dropped, so the required check must still fire.
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("")},
		})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("BlankOptionalDropped", func(t *testing.T) {
		answers, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("fine")},
			{QuestionID: checkID.Hex(), Value: models.ListAnswer()},
		})
		require.NoError(t, err)
		assert.Len(t, answers, 1)
	})

	t.Run("UnknownOptionRejected", func(t *testing.T) {
		_, err := buildAnswers(questions, []models.SubmitAnswer{
			{QuestionID: textID.Hex(), Value: models.ScalarAnswer("fine")},
			{QuestionID: choiceID.Hex(), Value: models.ScalarAnswer("Green")},
		})
		assert.True(t, utils.IsValidation(err))
	})
}

func TestCheckValueShapes(t *testing.T) {
	check := question(primitive.NewObjectID(), models.QuestionCheckboxes, false, "A", "B")
	pick := question(primitive.NewObjectID(), models.QuestionDropdown, false, "A", "B")
	text := question(primitive.NewObjectID(), models.QuestionParagraph, false)

	assert.True(t, utils.IsValidation(checkValue(check, models.ScalarAnswer("A"))))
	assert.NoError(t, checkValue(check, models.ListAnswer("A")))

	assert.True(t, utils.IsValidation(checkValue(pick, models.ListAnswer("A"))))
	assert.NoError(t, checkValue(pick, models.ScalarAnswer("B")))

	assert.True(t, utils.IsValidation(checkValue(text, models.ListAnswer("x"))))
	assert.NoError(t, checkValue(text, models.ScalarAnswer("anything at all")))
}
