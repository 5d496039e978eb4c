package responses

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildAnswers validates a public submission against the quest's questions
// and converts it into persistable answers. Any violation rejects the whole
// submission; nothing is stored.
func buildAnswers(questions []models.Question, submitted []models.SubmitAnswer) ([]models.Answer, error) {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID.Hex()] = q
	}

	answered := make(map[string]bool, len(submitted))
	answers := make([]models.Answer, 0, len(submitted))

	for _, sub := range submitted {
		q, ok := byID[sub.QuestionID]
		if !ok {
			return nil, utils.Invalid("answer references unknown question %s", sub.QuestionID)
		}
		if answered[sub.QuestionID] {
			return nil, utils.Invalid("duplicate answer for question %s", sub.QuestionID)
		}
		answered[sub.QuestionID] = true

		if q.Type.IsMedia() {
			return nil, utils.Invalid("question %q does not take answers", q.Title)
		}

		if sub.Value.IsEmpty() {
			continue // blank answers are dropped, required check runs below
		}

		if err := checkValue(q, sub.Value); err != nil {
			return nil, err
		}

		id, err := primitive.ObjectIDFromHex(sub.QuestionID)
		if err != nil {
			return nil, utils.Invalid("invalid question id %q", sub.QuestionID)
		}
		answers = append(answers, models.Answer{QuestionID: id, Value: sub.Value})
	}

	for _, q := range questions {
		if q.IsRequired && !q.Type.IsMedia() && !hasAnswer(answers, q.ID) {
			return nil, utils.Invalid("question %q requires an answer", q.Title)
		}
	}

	return answers, nil
}

func hasAnswer(answers []models.Answer, questionID primitive.ObjectID) bool {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// checkValue enforces the value shape and option membership per question
// kind.
func checkValue(q models.Question, value models.AnswerValue) error {
	if q.Type.IsChoice() {
		if q.Type == models.QuestionCheckboxes {
			if !value.IsList {
				return utils.Invalid("question %q takes a list of selections", q.Title)
			}
		} else if value.IsList {
			return utils.Invalid("question %q takes a single selection", q.Title)
		}

		allowed := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			allowed[opt.Value] = true
		}
		for _, v := range value.Values() {
			if !allowed[v] {
				return utils.Invalid("%q is not an option of question %q", v, q.Title)
			}
		}
		return nil
	}

	// free-text kinds take scalars only
	if value.IsList {
		return utils.Invalid("question %q takes a single value", q.Title)
	}
	return nil
}
