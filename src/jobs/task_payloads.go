package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCloseQuest = "quest:close"

type QuestPayload struct {
	QuestID string `json:"quest_id"`
}

func NewCloseQuestTask(questID string) (*asynq.Task, error) {
	payload, err := json.Marshal(QuestPayload{QuestID: questID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseQuest, payload), nil
}

const TypeGenerateBackground = "background:generate"

type BackgroundPayload struct {
	JobID string `json:"job_id"`
}

func NewGenerateBackgroundTask(jobID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BackgroundPayload{JobID: jobID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateBackground, payload), nil
}
