package responses

import (
	DB "Backend-QuestForge/src/database"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/questions"
	"Backend-QuestForge/src/utils"
	"context"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPublicQuest resolves a share token to a published quest and its
// questions, shuffled when the quest asks for it.
func GetPublicQuest(ctx context.Context, shareToken string) (*models.QuestWithQuestions, error) {
	var quest models.Quest
	err := DB.QuestCollection.FindOne(ctx, bson.M{"shareToken": shareToken, "isPublished": true}).Decode(&quest)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}

	qs, err := questions.GetQuestions(ctx, quest.ID)
	if err != nil {
		return nil, err
	}

	if quest.Settings.ShuffleQuestions {
		shuffled := make([]models.Question, len(qs))
		copy(shuffled, qs)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		qs = shuffled
	}

	return &models.QuestWithQuestions{Quest: quest, Questions: qs}, nil
}

// SubmitResponse validates and stores one public submission. Closed quests
// reject submissions outright.
func SubmitResponse(ctx context.Context, shareToken string, req *models.SubmitResponseRequest) (*models.Response, error) {
	var quest models.Quest
	err := DB.QuestCollection.FindOne(ctx, bson.M{"shareToken": shareToken, "isPublished": true}).Decode(&quest)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}

	if !quest.AcceptsResponses {
		return nil, utils.Invalid("quest is no longer accepting responses")
	}

	qs, err := questions.GetQuestions(ctx, quest.ID)
	if err != nil {
		return nil, err
	}

	answers, err := buildAnswers(qs, req.Answers)
	if err != nil {
		return nil, err
	}

	response := &models.Response{
		ID:              primitive.NewObjectID(),
		QuestID:         quest.ID,
		DurationSeconds: req.DurationSeconds,
		CreatedAt:       time.Now(),
		Answers:         answers,
	}

	if _, err := DB.ResponseCollection.InsertOne(ctx, response); err != nil {
		return nil, err
	}

	log.Printf("✅ Response %s stored for quest %s (%d answers)",
		response.ID.Hex(), quest.ID.Hex(), len(answers))
	return response, nil
}

// GetResponses lists a quest's responses newest first, paginated.
func GetResponses(ctx context.Context, questID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{"questId": questID}

	total, err := DB.ResponseCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := DB.ResponseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]models.Response, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(list, total, params), nil
}

// GetAllResponses reads a quest's full response set newest first, for the
// aggregator.
func GetAllResponses(ctx context.Context, questID primitive.ObjectID) ([]models.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.ResponseCollection.Find(ctx, bson.M{"questId": questID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]models.Response, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
