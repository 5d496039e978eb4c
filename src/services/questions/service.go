package questions

import (
	DB "Backend-QuestForge/src/database"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Redis cache helpers ---

const cacheTTL = 10 * time.Minute

func cacheKey(questID primitive.ObjectID) string {
	return fmt.Sprintf("quests:questions:%s", questID.Hex())
}

func setCache(key string, value interface{}) {
	if DB.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	DB.RedisClient.Set(DB.RedisCtx, key, b, cacheTTL)
}

func getCache(key string, dest interface{}) bool {
	if DB.RedisClient == nil {
		return false
	}
	val, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// InvalidateCache drops the cached question list for a quest. Every mutation
// in this package calls it; the quests service calls it on cascade delete.
func InvalidateCache(questID primitive.ObjectID) {
	if DB.RedisClient == nil {
		return
	}
	DB.RedisClient.Del(DB.RedisCtx, cacheKey(questID))
}

// fetchQuestions reads a quest's questions sorted by order. The _id tiebreak
// only matters transiently inside mutations; at rest orders are unique.
func fetchQuestions(ctx context.Context, questID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := DB.QuestionCollection.Find(ctx, bson.M{"questId": questID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestions returns a quest's questions in order, via the Redis cache
// when possible.
func GetQuestions(ctx context.Context, questID primitive.ObjectID) ([]models.Question, error) {
	key := cacheKey(questID)

	var cached []models.Question
	if getCache(key, &cached) {
		return cached, nil
	}

	questions, err := fetchQuestions(ctx, questID)
	if err != nil {
		return nil, err
	}

	setCache(key, questions)
	return questions, nil
}

// validatePayload checks type-specific option requirements.
func validatePayload(qType models.QuestionType, options []models.Option) error {
	if !qType.IsValid() {
		return utils.Invalid("unknown question type %q", qType)
	}
	switch {
	case qType.IsChoice():
		if len(options) == 0 {
			return utils.Invalid("%s questions need at least one option", qType)
		}
		for _, opt := range options {
			if opt.Value == "" {
				return utils.Invalid("%s questions cannot have empty option values", qType)
			}
		}
	case qType.IsMedia():
		if len(options) != 1 || options[0].Value == "" {
			return utils.Invalid("%s questions need exactly one media URL", qType)
		}
	default:
		if len(options) != 0 {
			return utils.Invalid("%s questions cannot have options", qType)
		}
	}
	return nil
}

func questExists(ctx context.Context, questID primitive.ObjectID) error {
	err := DB.QuestCollection.FindOne(ctx, bson.M{"_id": questID}).Err()
	if err == mongo.ErrNoDocuments {
		return utils.NotFound("quest not found")
	}
	return err
}

// CreateQuestion appends a new question at the end of the quest's list.
func CreateQuestion(ctx context.Context, questID primitive.ObjectID, req *models.CreateQuestionRequest) (*models.Question, error) {
	defer InvalidateCache(questID)

	if err := validatePayload(req.Type, req.Options); err != nil {
		return nil, err
	}
	if err := questExists(ctx, questID); err != nil {
		return nil, err
	}

	count, err := DB.QuestionCollection.CountDocuments(ctx, bson.M{"questId": questID})
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		ID:          primitive.NewObjectID(),
		QuestID:     questID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		IsRequired:  req.IsRequired,
		Order:       int(count), // orders are 0..n-1, so n is the next slot
		Options:     req.Options,
	}

	if _, err := DB.QuestionCollection.InsertOne(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// CreateMany inserts an initial question list for a fresh quest, ordered by
// array position. Used by quest creation (including assistant drafts).
func CreateMany(ctx context.Context, questID primitive.ObjectID, reqs []models.CreateQuestionRequest) ([]models.Question, error) {
	defer InvalidateCache(questID)

	questions := make([]models.Question, 0, len(reqs))
	docs := make([]interface{}, 0, len(reqs))
	for i, req := range reqs {
		if err := validatePayload(req.Type, req.Options); err != nil {
			return nil, err
		}
		question := models.Question{
			ID:          primitive.NewObjectID(),
			QuestID:     questID,
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			IsRequired:  req.IsRequired,
			Order:       i,
			Options:     req.Options,
		}
		questions = append(questions, question)
		docs = append(docs, question)
	}

	if len(docs) > 0 {
		if _, err := DB.QuestionCollection.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

// UpdateQuestion edits a question's content in place. Order never changes
// here.
func UpdateQuestion(ctx context.Context, questID, questionID primitive.ObjectID, req *models.UpdateQuestionRequest) (*models.Question, error) {
	defer InvalidateCache(questID)

	if err := validatePayload(req.Type, req.Options); err != nil {
		return nil, err
	}

	filter := bson.M{"_id": questionID, "questId": questID}
	update := bson.M{"$set": bson.M{
		"type":        req.Type,
		"title":       req.Title,
		"description": req.Description,
		"isRequired":  req.IsRequired,
		"options":     req.Options,
	}}

	var updated models.Question
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := DB.QuestionCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("question not found")
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// runTx runs fn inside one Mongo transaction. Either every write in fn is
// visible afterwards or none of them are.
func runTx(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := DB.GetClient().StartSession()
	if err != nil {
		return utils.TxFailed(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		if utils.IsNotFound(err) || utils.IsValidation(err) {
			return err
		}
		return utils.TxFailed(err, "transaction did not commit")
	}
	return nil
}

// ReorderQuestions rewrites every question's order to its position in ids.
// The list must be a permutation of the quest's current question set; on any
// validation failure nothing is written. All position updates commit as one
// transaction, so a concurrent reader never observes a half-applied
// renumbering. Two concurrent reorders of the same quest race
// last-commit-wins; either outcome keeps orders contiguous.
func ReorderQuestions(ctx context.Context, questID primitive.ObjectID, rawIDs []string) error {
	defer InvalidateCache(questID)

	ids, err := parseIDList(rawIDs)
	if err != nil {
		return err
	}

	if err := questExists(ctx, questID); err != nil {
		return err
	}

	err = runTx(ctx, func(sc mongo.SessionContext) error {
		existing, err := fetchQuestions(sc, questID)
		if err != nil {
			return err
		}
		if err := validatePermutation(existing, ids); err != nil {
			return err
		}

		_, err = DB.QuestionCollection.BulkWrite(sc, renumberModels(ids))
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Reordered %d questions for quest %s", len(ids), questID.Hex())
	return nil
}

// DuplicateQuestion clones a question directly after the original and
// renumbers the whole list back to 0..n. Insert and renumber commit
// together.
func DuplicateQuestion(ctx context.Context, questID, questionID primitive.ObjectID) (*models.Question, error) {
	defer InvalidateCache(questID)

	var duplicate models.Question

	err := runTx(ctx, func(sc mongo.SessionContext) error {
		var source models.Question
		err := DB.QuestionCollection.FindOne(sc, bson.M{"_id": questionID, "questId": questID}).Decode(&source)
		if err == mongo.ErrNoDocuments {
			return utils.NotFound("question not found")
		}
		if err != nil {
			return err
		}

		existing, err := fetchQuestions(sc, questID)
		if err != nil {
			return err
		}

		duplicate = source
		duplicate.ID = primitive.NewObjectID()
		duplicate.Title = source.Title + " (copy)"
		duplicate.Order = source.Order + 1

		if _, err := DB.QuestionCollection.InsertOne(sc, duplicate); err != nil {
			return err
		}

		sequence := duplicateSequence(existing, source.ID, duplicate.ID)
		if _, err := DB.QuestionCollection.BulkWrite(sc, renumberModels(sequence)); err != nil {
			return err
		}

		// reflect the final position in the returned document
		for i, id := range sequence {
			if id == duplicate.ID {
				duplicate.Order = i
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Duplicated question %s in quest %s", questionID.Hex(), questID.Hex())
	return &duplicate, nil
}

// DeleteQuestion removes a question and renumbers the survivors so orders
// stay contiguous. Delete and renumber commit together.
func DeleteQuestion(ctx context.Context, questID, questionID primitive.ObjectID) error {
	defer InvalidateCache(questID)

	err := runTx(ctx, func(sc mongo.SessionContext) error {
		existing, err := fetchQuestions(sc, questID)
		if err != nil {
			return err
		}

		res, err := DB.QuestionCollection.DeleteOne(sc, bson.M{"_id": questionID, "questId": questID})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return utils.NotFound("question not found")
		}

		sequence := removeFromSequence(existing, questionID)
		if len(sequence) == 0 {
			return nil
		}
		_, err = DB.QuestionCollection.BulkWrite(sc, renumberModels(sequence))
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Deleted question %s from quest %s", questionID.Hex(), questID.Hex())
	return nil
}
