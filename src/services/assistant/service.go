package assistant

import (
	DB "Backend-QuestForge/src/database"
	"Backend-QuestForge/src/jobs"
	"Backend-QuestForge/src/llm"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DraftQuest asks the LLM for a quest draft and normalizes it into a payload
// the quest create endpoint accepts as-is.
func DraftQuest(ctx context.Context, req *models.DraftRequest) (*models.QuestDraft, error) {
	raw, err := llm.DraftQuest(ctx, req.Brief, req.QuestionCount)
	if err != nil {
		return nil, err
	}

	draft := &models.QuestDraft{
		Title:       raw.Title,
		Description: raw.Description,
		Questions:   make([]models.QuestionDraft, 0, len(raw.Questions)),
	}

	for _, q := range raw.Questions {
		qType := models.QuestionType(q.Type)
		if !qType.IsValid() || qType.IsMedia() {
			continue // drop anything outside the drafting contract
		}
		if qType.IsChoice() && len(q.Options) == 0 {
			continue
		}
		if !qType.IsChoice() {
			q.Options = nil
		}
		draft.Questions = append(draft.Questions, models.QuestionDraft{
			Type:        qType,
			Title:       q.Title,
			Description: q.Description,
			IsRequired:  q.IsRequired,
			Options:     q.Options,
		})
	}

	if len(draft.Questions) == 0 {
		return nil, utils.Invalid("the assistant produced no usable questions, try a different brief")
	}

	log.Printf("✅ Drafted quest %q with %d questions", draft.Title, len(draft.Questions))
	return draft, nil
}

// EnqueueBackground records a background-image job for one of the owner's
// quests and queues it. Without Asynq the job runs inline.
func EnqueueBackground(ctx context.Context, ownerID primitive.ObjectID, req *models.BackgroundRequest) (*models.BackgroundJob, error) {
	questID, err := primitive.ObjectIDFromHex(req.QuestID)
	if err != nil {
		return nil, utils.Invalid("invalid quest id %q", req.QuestID)
	}

	err = DB.QuestCollection.FindOne(ctx, bson.M{"_id": questID, "ownerId": ownerID}).Err()
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("quest not found")
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &models.BackgroundJob{
		ID:        uuid.NewString(),
		QuestID:   questID,
		OwnerID:   ownerID,
		Prompt:    req.Prompt,
		State:     models.JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := DB.BackgroundJobCollection.InsertOne(ctx, job); err != nil {
		return nil, err
	}

	if DB.AsynqClient == nil {
		// dev mode: no queue, generate right away
		if err := jobs.ProcessBackgroundJob(ctx, job.ID); err != nil {
			return nil, err
		}
		return GetBackgroundJob(ctx, ownerID, job.ID)
	}

	task, err := jobs.NewGenerateBackgroundTask(job.ID)
	if err != nil {
		return nil, err
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		return nil, err
	}

	log.Printf("✅ Background job %s queued for quest %s", job.ID, questID.Hex())
	return job, nil
}

// GetBackgroundJob returns one of the owner's jobs, without the image bytes.
func GetBackgroundJob(ctx context.Context, ownerID primitive.ObjectID, jobID string) (*models.BackgroundJob, error) {
	var job models.BackgroundJob
	err := DB.BackgroundJobCollection.FindOne(ctx, bson.M{"_id": jobID, "ownerId": ownerID}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("background job not found")
	}
	if err != nil {
		return nil, err
	}
	job.Image = nil
	return &job, nil
}

// GetBackgroundImage returns the stored image bytes for a finished job.
// Images are public once attached: quest respondents load them too.
func GetBackgroundImage(ctx context.Context, jobID string) ([]byte, string, error) {
	var job models.BackgroundJob
	err := DB.BackgroundJobCollection.FindOne(ctx, bson.M{"_id": jobID, "state": models.JobDone}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, "", utils.NotFound("background image not found")
	}
	if err != nil {
		return nil, "", err
	}
	return job.Image, job.MIMEType, nil
}
