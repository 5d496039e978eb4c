package jobs

import (
	"Backend-QuestForge/src/database"
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the Asynq worker alongside the API server. No-op when
// Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCloseQuest, HandleCloseQuestTask)
	mux.HandleFunc(TypeGenerateBackground, HandleGenerateBackgroundTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Worker stopped:", err)
		}
	}()

	log.Println("✅ Asynq worker started")
}
