package questions

import (
	"testing"

	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			ID:    primitive.NewObjectID(),
			Type:  models.QuestionShortText,
			Title: "Question",
			Order: i,
		}
	}
	return qs
}

func idsOf(qs []models.Question) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestValidatePermutation(t *testing.T) {
	existing := makeQuestions(3)

	t.Run("AcceptsIdentity", func(t *testing.T) {
		assert.NoError(t, validatePermutation(existing, idsOf(existing)))
	})

	t.Run("AcceptsAnyReordering", func(t *testing.T) {
		ids := idsOf(existing)
		// [Q3, Q1, Q2]
		reordered := []primitive.ObjectID{ids[2], ids[0], ids[1]}
		assert.NoError(t, validatePermutation(existing, reordered))
	})

	t.Run("RejectsEmptyList", func(t *testing.T) {
		err := validatePermutation(existing, nil)
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("RejectsMissingIds", func(t *testing.T) {
		ids := idsOf(existing)
		err := validatePermutation(existing, ids[:2])
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("RejectsForeignId", func(t *testing.T) {
		ids := idsOf(existing)
		ids[1] = primitive.NewObjectID()
		err := validatePermutation(existing, ids)
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("RejectsDuplicateId", func(t *testing.T) {
		ids := idsOf(existing)
		ids[2] = ids[0]
		err := validatePermutation(existing, ids)
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))
	})
}

func TestParseIDList(t *testing.T) {
	valid := primitive.NewObjectID()

	ids, err := parseIDList([]string{valid.Hex()})
	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{valid}, ids)

	_, err = parseIDList([]string{"not-an-object-id"})
	assert.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestRenumberModels(t *testing.T) {
	existing := makeQuestions(3)
	writes := renumberModels(idsOf(existing))
	assert.Len(t, writes, 3) // one positional update per question
}

func TestDuplicateSequence(t *testing.T) {
	existing := makeQuestions(3) // [Q1, Q2, Q3]
	copyID := primitive.NewObjectID()

	t.Run("CopyLandsAfterSource", func(t *testing.T) {
		sequence := duplicateSequence(existing, existing[0].ID, copyID)

		assert.Equal(t, []primitive.ObjectID{
			existing[0].ID, copyID, existing[1].ID, existing[2].ID,
		}, sequence)
	})

	t.Run("CopyOfLastStaysLast", func(t *testing.T) {
		sequence := duplicateSequence(existing, existing[2].ID, copyID)

		assert.Equal(t, []primitive.ObjectID{
			existing[0].ID, existing[1].ID, existing[2].ID, copyID,
		}, sequence)
	})

	t.Run("FinalOrdersAreContiguous", func(t *testing.T) {
		sequence := duplicateSequence(existing, existing[1].ID, copyID)
		assert.Len(t, sequence, 4)

		// position in the sequence is the new order value: exactly 0..n
		seen := make(map[primitive.ObjectID]bool)
		for _, id := range sequence {
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestRemoveFromSequence(t *testing.T) {
	existing := makeQuestions(3)

	sequence := removeFromSequence(existing, existing[1].ID)
	assert.Equal(t, []primitive.ObjectID{existing[0].ID, existing[2].ID}, sequence)

	// removing an id that is not present changes nothing
	sequence = removeFromSequence(existing, primitive.NewObjectID())
	assert.Len(t, sequence, 3)
}

func TestValidatePayload(t *testing.T) {
	t.Run("ChoiceNeedsOptions", func(t *testing.T) {
		err := validatePayload(models.QuestionMultipleChoice, nil)
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))

		err = validatePayload(models.QuestionMultipleChoice, []models.Option{{Value: "A"}})
		assert.NoError(t, err)
	})

	t.Run("MediaNeedsExactlyOneURL", func(t *testing.T) {
		err := validatePayload(models.QuestionVideo, nil)
		assert.Error(t, err)

		err = validatePayload(models.QuestionVideo, []models.Option{{Value: "https://example.com/v.mp4"}})
		assert.NoError(t, err)
	})

	t.Run("FreeTextTakesNoOptions", func(t *testing.T) {
		err := validatePayload(models.QuestionParagraph, []models.Option{{Value: "A"}})
		assert.Error(t, err)

		assert.NoError(t, validatePayload(models.QuestionParagraph, nil))
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		err := validatePayload(models.QuestionType("essay"), nil)
		assert.Error(t, err)
		assert.True(t, utils.IsValidation(err))
	})
}
