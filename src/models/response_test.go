package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerValueJSON(t *testing.T) {
	t.Run("ScalarDecodesFromString", func(t *testing.T) {
		var v AnswerValue
		assert.NoError(t, json.Unmarshal([]byte(`"hello"`), &v))
		assert.False(t, v.IsList)
		assert.Equal(t, "hello", v.Text)
		assert.Equal(t, []string{"hello"}, v.Values())
	})

	t.Run("ListDecodesFromArray", func(t *testing.T) {
		var v AnswerValue
		assert.NoError(t, json.Unmarshal([]byte(`["A","B"]`), &v))
		assert.True(t, v.IsList)
		assert.Equal(t, []string{"A", "B"}, v.Values())
	})

	t.Run("RejectsOtherShapes", func(t *testing.T) {
		var v AnswerValue
		assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &v))
		assert.Error(t, json.Unmarshal([]byte(`42`), &v))
	})

	t.Run("MarshalKeepsTheWireShape", func(t *testing.T) {
		b, err := json.Marshal(ScalarAnswer("hi"))
		assert.NoError(t, err)
		assert.JSONEq(t, `"hi"`, string(b))

		b, err = json.Marshal(ListAnswer("A", "B"))
		assert.NoError(t, err)
		assert.JSONEq(t, `["A","B"]`, string(b))
	})
}

func TestAnswerValueEmptiness(t *testing.T) {
	assert.True(t, ScalarAnswer("").IsEmpty())
	assert.True(t, ListAnswer().IsEmpty())
	assert.False(t, ScalarAnswer("x").IsEmpty())
	assert.False(t, ListAnswer("x").IsEmpty())

	assert.Nil(t, ScalarAnswer("").Values())
}

func TestOptionJSON(t *testing.T) {
	t.Run("DecodesBareString", func(t *testing.T) {
		var o Option
		assert.NoError(t, json.Unmarshal([]byte(`"Red"`), &o))
		assert.Equal(t, Option{Value: "Red"}, o)
	})

	t.Run("DecodesValueImagePair", func(t *testing.T) {
		var o Option
		assert.NoError(t, json.Unmarshal([]byte(`{"value":"Red","image":"https://x/red.png"}`), &o))
		assert.Equal(t, "Red", o.Value)
		assert.Equal(t, "https://x/red.png", o.Image)
	})

	t.Run("MarshalUsesCompactFormWithoutImage", func(t *testing.T) {
		b, err := json.Marshal(Option{Value: "Red"})
		assert.NoError(t, err)
		assert.JSONEq(t, `"Red"`, string(b))

		b, err = json.Marshal(Option{Value: "Red", Image: "https://x/red.png"})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"value":"Red","image":"https://x/red.png"}`, string(b))
	})
}

func TestQuestionTypeKinds(t *testing.T) {
	assert.True(t, QuestionCheckboxes.IsChoice())
	assert.True(t, QuestionDropdown.IsChoice())
	assert.True(t, QuestionDate.IsFreeText())
	assert.True(t, QuestionVideo.IsMedia())
	assert.False(t, QuestionShortText.IsChoice())
	assert.False(t, QuestionType("essay").IsValid())
}
