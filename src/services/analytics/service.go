package analytics

import (
	"Backend-QuestForge/src/models"
)

// answerPreviewCap bounds the free-text preview list. A display concern, not
// a correctness one.
const answerPreviewCap = 50

// BuildQuestSummary derives the analytics view of a quest from its questions
// and full response set. It is a pure function: no reads, no writes, same
// output for the same input.
//
// Responses are expected newest first; the free-text previews keep that
// order.
func BuildQuestSummary(questions []models.Question, responses []models.Response) *models.QuestSummary {
	summary := &models.QuestSummary{
		ResponseCount:   len(responses),
		AverageDuration: averageDuration(responses),
		CompletionRate:  nil, // not yet specified
		Questions:       make([]models.QuestionSummary, 0, len(questions)),
	}

	for _, q := range questions {
		summary.Questions = append(summary.Questions, summarizeQuestion(q, responses))
	}

	return summary
}

func summarizeQuestion(q models.Question, responses []models.Response) models.QuestionSummary {
	qs := models.QuestionSummary{
		QuestionID: q.ID,
		Title:      q.Title,
		Type:       q.Type,
	}

	switch {
	case q.Type.IsChoice():
		// Checkbox answers are lists; every selected option counts once.
		qs.Frequencies = make(map[string]int)
		for _, resp := range responses {
			values := answerValues(resp, q)
			if len(values) > 0 {
				qs.AnswerCount++
			}
			for _, v := range values {
				qs.Frequencies[v]++
			}
		}
	case q.Type.IsFreeText():
		qs.Answers = make([]string, 0)
		for _, resp := range responses {
			for _, v := range answerValues(resp, q) {
				qs.AnswerCount++
				if len(qs.Answers) < answerPreviewCap {
					qs.Answers = append(qs.Answers, v)
				}
			}
		}
	}
	// media kinds take no answers, nothing to aggregate

	return qs
}

// answerValues flattens one response's answer to q into its non-empty
// values.
func answerValues(resp models.Response, q models.Question) []string {
	for _, a := range resp.Answers {
		if a.QuestionID == q.ID {
			return nonEmpty(a.Value.Values())
		}
	}
	return nil
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func averageDuration(responses []models.Response) float64 {
	if len(responses) == 0 {
		return 0 // no responses, report zero instead of dividing
	}
	var total int
	for _, r := range responses {
		total += r.DurationSeconds
	}
	return float64(total) / float64(len(responses))
}
