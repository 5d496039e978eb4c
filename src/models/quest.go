package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestSettings are the owner-facing display switches.
type QuestSettings struct {
	ShowProgress     bool `bson:"showProgress" json:"showProgress"`
	ShuffleQuestions bool `bson:"shuffleQuestions" json:"shuffleQuestions"`
	QuizMode         bool `bson:"quizMode" json:"quizMode"`
}

// Quest is a form owned by one user. Questions and responses hang off it and
// are removed together with it.
type Quest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID          primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	IsPublished      bool               `bson:"isPublished" json:"isPublished"`
	AcceptsResponses bool               `bson:"acceptsResponses" json:"acceptsResponses"`
	ShareToken       string             `bson:"shareToken,omitempty" json:"shareToken,omitempty"`
	BackgroundImage  string             `bson:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	Settings         QuestSettings      `bson:"settings" json:"settings"`
	CloseAt          *time.Time         `bson:"closeAt,omitempty" json:"closeAt,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// QuestWithQuestions bundles a quest with its ordered question list.
type QuestWithQuestions struct {
	Quest     Quest      `json:"quest"`
	Questions []Question `json:"questions"`
}

// CreateQuestRequest creates a draft quest, optionally with initial questions
// (the assistant returns drafts in this shape).
type CreateQuestRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Settings    QuestSettings           `json:"settings"`
	CloseAt     *time.Time              `json:"closeAt"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"dive"`
}

// UpdateQuestRequest edits quest metadata and settings.
type UpdateQuestRequest struct {
	Title            string        `json:"title" validate:"required"`
	Description      string        `json:"description"`
	AcceptsResponses *bool         `json:"acceptsResponses"`
	BackgroundImage  *string       `json:"backgroundImage"`
	Settings         QuestSettings `json:"settings"`
	CloseAt          *time.Time    `json:"closeAt"`
}
