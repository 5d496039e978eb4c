package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerValue is the value a respondent gave for one question: a scalar for
// text/date/time kinds, a list of selections for checkbox kinds. The two
// variants are explicit; wire and storage forms stay a bare string or array.
type AnswerValue struct {
	Text   string
	List   []string
	IsList bool
}

// ScalarAnswer builds the scalar variant.
func ScalarAnswer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

// ListAnswer builds the list variant.
func ListAnswer(values ...string) AnswerValue {
	return AnswerValue{List: values, IsList: true}
}

// Values flattens the answer into its selected values. A scalar yields a
// single-element slice; empty answers yield nil.
func (v AnswerValue) Values() []string {
	if v.IsList {
		return v.List
	}
	if v.Text == "" {
		return nil
	}
	return []string{v.Text}
}

// IsEmpty reports whether the respondent left the question blank.
func (v AnswerValue) IsEmpty() bool {
	if v.IsList {
		return len(v.List) == 0
	}
	return v.Text == ""
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = AnswerValue{List: list, IsList: true}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("answer value must be a string or string array: %w", err)
	}
	*v = AnswerValue{Text: text}
	return nil
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v.IsList {
		return bson.MarshalValue(v.List)
	}
	return bson.MarshalValue(v.Text)
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var text string
		if err := bson.UnmarshalValue(t, data, &text); err != nil {
			return err
		}
		*v = AnswerValue{Text: text}
		return nil
	case bsontype.Array:
		var list []string
		if err := bson.UnmarshalValue(t, data, &list); err != nil {
			return err
		}
		*v = AnswerValue{List: list, IsList: true}
		return nil
	case bsontype.Null:
		*v = AnswerValue{}
		return nil
	}
	return fmt.Errorf("answer value has unexpected bson type %s", t)
}

// Answer is one respondent's value for one question.
type Answer struct {
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	Value      AnswerValue        `bson:"value" json:"value"`
}

// Response is one respondent's full submission to a quest.
type Response struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestID         primitive.ObjectID `bson:"questId" json:"questId"`
	DurationSeconds int                `bson:"durationSeconds" json:"durationSeconds"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	Answers         []Answer           `bson:"answers,omitempty" json:"answers"`
}

// SubmitAnswer is one answer in a public submission, keyed by hex id so the
// payload can be validated before ids are parsed.
type SubmitAnswer struct {
	QuestionID string      `json:"questionId" validate:"required"`
	Value      AnswerValue `json:"value"`
}

// SubmitResponseRequest is the public submission payload.
type SubmitResponseRequest struct {
	DurationSeconds int            `json:"durationSeconds" validate:"gte=0"`
	Answers         []SubmitAnswer `json:"answers" validate:"dive"`
}
