package questions

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseIDList converts hex ids from the reorder payload to ObjectIDs.
func parseIDList(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, raw := range ids {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, utils.Invalid("invalid question id %q", raw)
		}
		out = append(out, id)
	}
	return out, nil
}

// validatePermutation checks that ids is exactly a permutation of the quest's
// current question set: non-empty, no foreign ids, no duplicates, nothing
// missing. The reorder engine refuses to write anything otherwise.
func validatePermutation(existing []models.Question, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return utils.Invalid("question id list is empty")
	}
	if len(ids) != len(existing) {
		return utils.Invalid("expected %d question ids, got %d", len(existing), len(ids))
	}

	current := make(map[primitive.ObjectID]bool, len(existing))
	for _, q := range existing {
		current[q.ID] = true
	}

	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if !current[id] {
			return utils.Invalid("question %s does not belong to this quest", id.Hex())
		}
		if seen[id] {
			return utils.Invalid("duplicate question id %s", id.Hex())
		}
		seen[id] = true
	}

	// equal length + no foreign ids + no duplicates = permutation
	return nil
}

// renumberModels builds one order update per id, order = position in the
// sequence. Applied as a single BulkWrite so a reorder is all-or-nothing.
func renumberModels(sequence []primitive.ObjectID) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(sequence))
	for i, id := range sequence {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i}}))
	}
	return writes
}

// duplicateSequence builds the final id sequence after inserting a copy:
// everything before the source stays, the copy lands directly after the
// source, the rest shifts up by one.
func duplicateSequence(existing []models.Question, sourceID, copyID primitive.ObjectID) []primitive.ObjectID {
	sequence := make([]primitive.ObjectID, 0, len(existing)+1)
	for _, q := range existing {
		sequence = append(sequence, q.ID)
		if q.ID == sourceID {
			sequence = append(sequence, copyID)
		}
	}
	return sequence
}

// removeFromSequence builds the surviving id sequence after a delete.
func removeFromSequence(existing []models.Question, removedID primitive.ObjectID) []primitive.ObjectID {
	sequence := make([]primitive.ObjectID, 0, len(existing))
	for _, q := range existing {
		if q.ID != removedID {
			sequence = append(sequence, q.ID)
		}
	}
	return sequence
}
