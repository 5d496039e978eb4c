package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionShortText      QuestionType = "shortText"
	QuestionParagraph      QuestionType = "paragraph"
	QuestionMultipleChoice QuestionType = "multipleChoice"
	QuestionCheckboxes     QuestionType = "checkboxes"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionDate           QuestionType = "date"
	QuestionTime           QuestionType = "time"
	QuestionVideo          QuestionType = "video"
	QuestionImage          QuestionType = "image"
)

// IsValid reports whether t is one of the supported kinds.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionShortText, QuestionParagraph, QuestionMultipleChoice,
		QuestionCheckboxes, QuestionDropdown, QuestionDate, QuestionTime,
		QuestionVideo, QuestionImage:
		return true
	}
	return false
}

// IsChoice reports whether answers to t are picked from the question's options.
func (t QuestionType) IsChoice() bool {
	return t == QuestionMultipleChoice || t == QuestionCheckboxes || t == QuestionDropdown
}

// IsFreeText reports whether answers to t are free-form values.
func (t QuestionType) IsFreeText() bool {
	return t == QuestionShortText || t == QuestionParagraph || t == QuestionDate || t == QuestionTime
}

// IsMedia reports whether t is a display-only media block with no answers.
func (t QuestionType) IsMedia() bool {
	return t == QuestionVideo || t == QuestionImage
}

// Option is one selectable choice (or, for media questions, the media URL).
// Clients send either a bare string or a {value, image} pair; both decode
// into this struct.
type Option struct {
	Value string `bson:"value" json:"value"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// UnmarshalJSON accepts "Red" as shorthand for {"value": "Red"}.
func (o *Option) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		o.Value = plain
		o.Image = ""
		return nil
	}

	type optionDoc Option // no recursion
	var doc optionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("option must be a string or {value, image} object: %w", err)
	}
	*o = Option(doc)
	return nil
}

// MarshalJSON keeps the compact string form when there is no image.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.Image == "" {
		return json.Marshal(o.Value)
	}
	type optionDoc Option
	return json.Marshal(optionDoc(o))
}

// Question is one form field within a quest. Order values of a quest's
// questions are always exactly 0..n-1 at rest.
type Question struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestID     primitive.ObjectID `bson:"questId" json:"questId"`
	Type        QuestionType       `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsRequired  bool               `bson:"isRequired" json:"isRequired"`
	Order       int                `bson:"order" json:"order"`
	Options     []Option           `bson:"options,omitempty" json:"options,omitempty"`
}

// CreateQuestionRequest is the payload for adding a question to a quest.
// New questions are appended at the end of the list.
type CreateQuestionRequest struct {
	Type        QuestionType `json:"type" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	IsRequired  bool         `json:"isRequired"`
	Options     []Option     `json:"options"`
}

// UpdateQuestionRequest edits a question in place. Order is not editable
// here; the reorder endpoint owns it.
type UpdateQuestionRequest struct {
	Type        QuestionType `json:"type" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	IsRequired  bool         `json:"isRequired"`
	Options     []Option     `json:"options"`
}

// ReorderRequest carries the full desired sequence of question ids. It must
// be a permutation of the quest's current question set.
type ReorderRequest struct {
	QuestionIDs []string `json:"questionIds" validate:"required,min=1,dive,required"`
}
