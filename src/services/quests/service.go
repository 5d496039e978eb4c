package quests

import (
	DB "Backend-QuestForge/src/database"
	"Backend-QuestForge/src/jobs"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/qrcode"
	"Backend-QuestForge/src/services/questions"
	"Backend-QuestForge/src/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Redis cache helpers ---

func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

func listCacheKey(ownerID primitive.ObjectID, params models.PaginationParams) string {
	return fmt.Sprintf("quests:list:%s:%s", ownerID.Hex(), hashParams(params))
}

func setCache(key string, value interface{}, ttl time.Duration) {
	if DB.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	DB.RedisClient.Set(DB.RedisCtx, key, b, ttl)
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

func invalidateListCache(ownerID primitive.ObjectID) {
	if DB.RedisClient == nil {
		return
	}
	pattern := fmt.Sprintf("quests:list:%s:*", ownerID.Hex())
	iter := DB.RedisClient.Scan(DB.RedisCtx, 0, pattern, 0).Iterator()
	for iter.Next(DB.RedisCtx) {
		DB.RedisClient.Del(DB.RedisCtx, iter.Val())
	}
}

// scheduleCloseTask queues the stop-accepting-responses task for the quest's
// deadline. Skipped silently when Asynq is not available (dev mode).
func scheduleCloseTask(questID primitive.ObjectID, closeAt time.Time) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := jobs.NewCloseQuestTask(questID.Hex())
	if err != nil {
		log.Println("❌ Failed to build close-quest task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(closeAt)); err != nil {
		log.Println("❌ Failed to enqueue close-quest task:", err)
		return
	}
	log.Printf("✅ Scheduled close task for quest %s at %s", questID.Hex(), closeAt.Format(time.RFC3339))
}

// CreateQuest creates a draft quest, with initial questions when provided
// (assistant drafts arrive that way).
func CreateQuest(ctx context.Context, ownerID primitive.ObjectID, req *models.CreateQuestRequest) (*models.QuestWithQuestions, error) {
	defer invalidateListCache(ownerID)

	now := time.Now()
	quest := models.Quest{
		ID:               primitive.NewObjectID(),
		OwnerID:          ownerID,
		Title:            req.Title,
		Description:      req.Description,
		IsPublished:      false,
		AcceptsResponses: false,
		Settings:         req.Settings,
		CloseAt:          req.CloseAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := DB.QuestCollection.InsertOne(ctx, quest); err != nil {
		return nil, err
	}

	created, err := questions.CreateMany(ctx, quest.ID, req.Questions)
	if err != nil {
		return nil, err
	}

	if quest.CloseAt != nil {
		scheduleCloseTask(quest.ID, *quest.CloseAt)
	}

	return &models.QuestWithQuestions{Quest: quest, Questions: created}, nil
}

// GetQuests lists the owner's quests with pagination, search and sorting.
func GetQuests(ctx context.Context, ownerID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	key := listCacheKey(ownerID, params)

	var cached models.PaginatedResponse
	if getCache(key, &cached) {
		return &cached, nil
	}

	filter := bson.M{"ownerId": ownerID}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.QuestCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.QuestCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quests := make([]models.Quest, 0)
	if err = cursor.All(ctx, &quests); err != nil {
		return nil, err
	}

	result := models.NewPaginatedResponse(quests, total, params)
	setCache(key, result, 5*time.Minute)
	return result, nil
}

// GetQuestByID returns the owner's quest or NotFound. The ownership filter is
// the gate: someone else's quest id behaves like a missing one.
func GetQuestByID(ctx context.Context, ownerID, questID primitive.ObjectID) (*models.Quest, error) {
	var quest models.Quest
	err := DB.QuestCollection.FindOne(ctx, bson.M{"_id": questID, "ownerId": ownerID}).Decode(&quest)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

// GetQuestWithQuestions returns the quest plus its ordered question list.
func GetQuestWithQuestions(ctx context.Context, ownerID, questID primitive.ObjectID) (*models.QuestWithQuestions, error) {
	quest, err := GetQuestByID(ctx, ownerID, questID)
	if err != nil {
		return nil, err
	}

	qs, err := questions.GetQuestions(ctx, questID)
	if err != nil {
		return nil, err
	}

	return &models.QuestWithQuestions{Quest: *quest, Questions: qs}, nil
}

// UpdateQuest edits quest metadata and settings.
func UpdateQuest(ctx context.Context, ownerID, questID primitive.ObjectID, req *models.UpdateQuestRequest) (*models.Quest, error) {
	defer invalidateListCache(ownerID)

	set := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"settings":    req.Settings,
		"closeAt":     req.CloseAt,
		"updatedAt":   time.Now(),
	}
	if req.AcceptsResponses != nil {
		set["acceptsResponses"] = *req.AcceptsResponses
	}
	if req.BackgroundImage != nil {
		set["backgroundImage"] = *req.BackgroundImage
	}

	var updated models.Quest
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := DB.QuestCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": questID, "ownerId": ownerID},
		bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}

	if req.CloseAt != nil && req.CloseAt.After(time.Now()) {
		scheduleCloseTask(questID, *req.CloseAt)
	}

	return &updated, nil
}

// PublishQuest marks the quest published and opens it for responses. The
// share token is minted once and survives unpublish/republish cycles.
func PublishQuest(ctx context.Context, ownerID, questID primitive.ObjectID) (*models.Quest, error) {
	defer invalidateListCache(ownerID)

	quest, err := GetQuestByID(ctx, ownerID, questID)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"isPublished":      true,
		"acceptsResponses": true,
		"updatedAt":        time.Now(),
	}
	if quest.ShareToken == "" {
		set["shareToken"] = uuid.NewString()
	}

	var updated models.Quest
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = DB.QuestCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": questID, "ownerId": ownerID},
		bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Quest published: %s (token %s)", questID.Hex(), updated.ShareToken)
	return &updated, nil
}

// shareURL builds the respondent-facing URL for a share token.
func shareURL(token string) string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8888"
	}
	return fmt.Sprintf("%s/public/quests/%s", strings.TrimRight(base, "/"), token)
}

// ShareQRCode renders the quest's public share URL as a PNG QR code, for
// posters and slides. The quest must be published.
func ShareQRCode(ctx context.Context, ownerID, questID primitive.ObjectID) ([]byte, error) {
	quest, err := GetQuestByID(ctx, ownerID, questID)
	if err != nil {
		return nil, err
	}
	if !quest.IsPublished || quest.ShareToken == "" {
		return nil, utils.Invalid("quest is not published")
	}

	png, err := qrcode.EncodePNG(shareURL(quest.ShareToken))
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Share QR code generated for quest %s", questID.Hex())
	return png, nil
}

// UnpublishQuest takes the quest offline and stops accepting responses.
func UnpublishQuest(ctx context.Context, ownerID, questID primitive.ObjectID) (*models.Quest, error) {
	defer invalidateListCache(ownerID)

	var updated models.Quest
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := DB.QuestCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": questID, "ownerId": ownerID},
		bson.M{"$set": bson.M{
			"isPublished":      false,
			"acceptsResponses": false,
			"updatedAt":        time.Now(),
		}}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteQuest removes the quest and cascades to its questions and responses.
func DeleteQuest(ctx context.Context, ownerID, questID primitive.ObjectID) error {
	defer invalidateListCache(ownerID)
	defer questions.InvalidateCache(questID)

	res, err := DB.QuestCollection.DeleteOne(ctx, bson.M{"_id": questID, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.NotFound("quest not found")
	}

	if _, err := DB.QuestionCollection.DeleteMany(ctx, bson.M{"questId": questID}); err != nil {
		log.Println("⚠️ Warning: failed to cascade-delete questions:", err)
	}
	if _, err := DB.ResponseCollection.DeleteMany(ctx, bson.M{"questId": questID}); err != nil {
		log.Println("⚠️ Warning: failed to cascade-delete responses:", err)
	}

	log.Printf("✅ Quest deleted: %s", questID.Hex())
	return nil
}
