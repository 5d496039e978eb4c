package jobs

import (
	"Backend-QuestForge/src/database"
	"Backend-QuestForge/src/models"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCloseQuestTask stops a quest from accepting responses once its
// deadline has passed. Idempotent: rescheduled or duplicate deliveries are
// harmless.
func HandleCloseQuestTask(ctx context.Context, t *asynq.Task) error {
	var payload QuestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.QuestID)
	if err != nil {
		return err
	}

	var quest models.Quest
	err = database.QuestCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&quest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Quest not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // not an error
		}
		log.Println("❌ Failed to find quest:", err)
		return err
	}

	// The deadline may have been moved after this task was scheduled.
	if quest.CloseAt == nil || quest.CloseAt.After(time.Now()) {
		log.Println("⚠️ Quest deadline moved. Skipping close:", id.Hex())
		return nil
	}

	_, err = database.QuestCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"acceptsResponses": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("❌ Failed to close quest:", err)
		return err
	}

	log.Println("✅ Quest closed for responses:", id.Hex())
	return nil
}
