package analytics

import (
	"fmt"
	"testing"

	"Backend-QuestForge/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func choiceQuestion(title string, options ...string) models.Question {
	opts := make([]models.Option, len(options))
	for i, o := range options {
		opts[i] = models.Option{Value: o}
	}
	return models.Question{
		ID:      primitive.NewObjectID(),
		Type:    models.QuestionCheckboxes,
		Title:   title,
		Options: opts,
	}
}

func responseWith(q models.Question, value models.AnswerValue, duration int) models.Response {
	return models.Response{
		ID:              primitive.NewObjectID(),
		DurationSeconds: duration,
		Answers:         []models.Answer{{QuestionID: q.ID, Value: value}},
	}
}

func TestCheckboxFrequencies(t *testing.T) {
	q := choiceQuestion("Pick colors", "A", "B")

	// three responses selecting [A], [A,B], [B]
	responses := []models.Response{
		responseWith(q, models.ListAnswer("A"), 0),
		responseWith(q, models.ListAnswer("A", "B"), 0),
		responseWith(q, models.ListAnswer("B"), 0),
	}

	summary := BuildQuestSummary([]models.Question{q}, responses)

	assert.Len(t, summary.Questions, 1)
	assert.Equal(t, map[string]int{"A": 2, "B": 2}, summary.Questions[0].Frequencies)
	assert.Equal(t, 3, summary.Questions[0].AnswerCount)
}

func TestAverageDuration(t *testing.T) {
	q := choiceQuestion("Q", "A")

	responses := []models.Response{
		responseWith(q, models.ListAnswer("A"), 10),
		responseWith(q, models.ListAnswer("A"), 20),
		responseWith(q, models.ListAnswer("A"), 30),
	}

	summary := BuildQuestSummary([]models.Question{q}, responses)
	assert.Equal(t, 20.0, summary.AverageDuration)
	assert.Equal(t, 3, summary.ResponseCount)
}

func TestEmptyQuestReportsZero(t *testing.T) {
	q := choiceQuestion("Q", "A")

	summary := BuildQuestSummary([]models.Question{q}, nil)

	assert.Equal(t, 0, summary.ResponseCount)
	assert.Equal(t, 0.0, summary.AverageDuration) // no divide-by-zero
	assert.Empty(t, summary.Questions[0].Frequencies)
}

func TestCompletionRateStaysUnspecified(t *testing.T) {
	summary := BuildQuestSummary(nil, nil)
	assert.Nil(t, summary.CompletionRate)
}

func TestFreeTextPreview(t *testing.T) {
	q := models.Question{
		ID:    primitive.NewObjectID(),
		Type:  models.QuestionShortText,
		Title: "Name",
	}

	t.Run("KeepsRecencyOrderAndDropsBlanks", func(t *testing.T) {
		responses := []models.Response{
			responseWith(q, models.ScalarAnswer("newest"), 0),
			responseWith(q, models.ScalarAnswer(""), 0),
			responseWith(q, models.ScalarAnswer("oldest"), 0),
		}

		summary := BuildQuestSummary([]models.Question{q}, responses)
		assert.Equal(t, []string{"newest", "oldest"}, summary.Questions[0].Answers)
		assert.Equal(t, 2, summary.Questions[0].AnswerCount)
	})

	t.Run("CapsThePreview", func(t *testing.T) {
		responses := make([]models.Response, 0, 60)
		for i := 0; i < 60; i++ {
			responses = append(responses, responseWith(q, models.ScalarAnswer(fmt.Sprintf("answer %d", i)), 0))
		}

		summary := BuildQuestSummary([]models.Question{q}, responses)
		assert.Len(t, summary.Questions[0].Answers, answerPreviewCap)
		assert.Equal(t, 60, summary.Questions[0].AnswerCount) // cap is display-only
	})
}

func TestMediaQuestionsAggregateNothing(t *testing.T) {
	q := models.Question{
		ID:      primitive.NewObjectID(),
		Type:    models.QuestionImage,
		Title:   "Banner",
		Options: []models.Option{{Value: "https://example.com/banner.png"}},
	}

	summary := BuildQuestSummary([]models.Question{q}, []models.Response{{}})

	assert.Nil(t, summary.Questions[0].Frequencies)
	assert.Nil(t, summary.Questions[0].Answers)
	assert.Equal(t, 0, summary.Questions[0].AnswerCount)
}

func TestSummaryIsIdempotent(t *testing.T) {
	q := choiceQuestion("Pick", "A", "B")
	responses := []models.Response{
		responseWith(q, models.ListAnswer("A"), 10),
		responseWith(q, models.ListAnswer("B"), 30),
	}

	first := BuildQuestSummary([]models.Question{q}, responses)
	second := BuildQuestSummary([]models.Question{q}, responses)

	assert.Equal(t, first, second) // pure function, no side effects
}
