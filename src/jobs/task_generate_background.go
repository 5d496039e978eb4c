package jobs

import (
	"Backend-QuestForge/src/database"
	"Backend-QuestForge/src/llm"
	"Backend-QuestForge/src/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGenerateBackgroundTask runs one queued background-image generation.
func HandleGenerateBackgroundTask(ctx context.Context, t *asynq.Task) error {
	var payload BackgroundPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}
	return ProcessBackgroundJob(ctx, payload.JobID)
}

// ProcessBackgroundJob generates the image for a job and stores the result.
// Called from the worker, or inline when Asynq is not available.
func ProcessBackgroundJob(ctx context.Context, jobID string) error {
	var job models.BackgroundJob
	err := database.BackgroundJobCollection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Background job not found. Possibly deleted. Skipping:", jobID)
			return nil // not an error
		}
		return err
	}

	if job.State == models.JobDone {
		return nil // already processed
	}

	image, mime, genErr := llm.GenerateImage(ctx, job.Prompt)
	if genErr != nil {
		_, _ = database.BackgroundJobCollection.UpdateOne(ctx,
			bson.M{"_id": jobID},
			bson.M{"$set": bson.M{
				"state":     models.JobFailed,
				"error":     genErr.Error(),
				"updatedAt": time.Now(),
			}})
		log.Println("❌ Background generation failed:", genErr)
		return genErr
	}

	_, err = database.BackgroundJobCollection.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$set": bson.M{
			"state":     models.JobDone,
			"error":     "",
			"mimeType":  mime,
			"image":     image,
			"updatedAt": time.Now(),
		}})
	if err != nil {
		return err
	}

	// point the quest at the stored image
	imageURL := fmt.Sprintf("/assistant/background/%s/image", jobID)
	_, err = database.QuestCollection.UpdateOne(ctx,
		bson.M{"_id": job.QuestID},
		bson.M{"$set": bson.M{"backgroundImage": imageURL, "updatedAt": time.Now()}})
	if err != nil {
		log.Println("⚠️ Warning: failed to attach background to quest:", err)
	}

	log.Printf("✅ Background generated for quest %s (job %s, %d bytes)",
		job.QuestID.Hex(), jobID, len(image))
	return nil
}
