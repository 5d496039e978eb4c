package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// QuestionSummary is the analytics view of one question. Choice kinds carry
// a frequency table; free-text kinds carry a capped answer preview; media
// kinds carry neither.
type QuestionSummary struct {
	QuestionID  primitive.ObjectID `json:"questionId"`
	Title       string             `json:"title"`
	Type        QuestionType       `json:"type"`
	AnswerCount int                `json:"answerCount"`
	Frequencies map[string]int     `json:"frequencies,omitempty"`
	Answers     []string           `json:"answers,omitempty"`
}

// QuestSummary is the full analytics view of a quest.
type QuestSummary struct {
	ResponseCount   int               `json:"responseCount"`
	AverageDuration float64           `json:"averageDuration"`
	CompletionRate  *float64          `json:"completionRate"` // not yet specified; always null
	Questions       []QuestionSummary `json:"questions"`
}
