package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DraftRequest asks the assistant to draft a quest from a short brief.
type DraftRequest struct {
	Brief         string `json:"brief" validate:"required"`
	QuestionCount int    `json:"questionCount" validate:"gte=0,lte=20"`
}

// QuestDraft is what the assistant returns. It is shaped so the client can
// pass it straight to the quest create endpoint.
type QuestDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionDraft `json:"questions"`
}

// QuestionDraft is one drafted question.
type QuestionDraft struct {
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	IsRequired  bool         `json:"isRequired"`
	Options     []string     `json:"options"`
}

// BackgroundRequest asks for a generated background image.
type BackgroundRequest struct {
	QuestID string `json:"questId" validate:"required"`
	Prompt  string `json:"prompt" validate:"required"`
}

// Background job states.
const (
	JobPending = "pending"
	JobDone    = "done"
	JobFailed  = "failed"
)

// BackgroundJob tracks one queued image generation.
type BackgroundJob struct {
	ID        string             `bson:"_id" json:"id"` // uuid
	QuestID   primitive.ObjectID `bson:"questId" json:"questId"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	State     string             `bson:"state" json:"state"`
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	MIMEType  string             `bson:"mimeType,omitempty" json:"mimeType,omitempty"`
	Image     []byte             `bson:"image,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
