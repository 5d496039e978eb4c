package main

import (
	_ "Backend-QuestForge/docs"
	"Backend-QuestForge/src/database"
	"Backend-QuestForge/src/jobs"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/routes"
	"Backend-QuestForge/src/seeder"
	"Backend-QuestForge/src/services/auth"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        QuestForge API
// @version      1.0
// @description  Quest builder backend: quests, questions, responses, analytics and the AI assistant
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {

	// connect MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and the job queue are optional in dev mode
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		seedSampleData()
	}

	// create app instance
	app := fiber.New()

	// CORS middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // must stay false with "*"
	}))

	// Swagger UI at /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// mount routes from every module
	routes.InitRoutes(app)

	// get port from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	// start the server
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}

// seedSampleData creates a demo account with sample quests for local work.
func seedSampleData() {
	ctx := context.Background()

	user, err := auth.RegisterUser(ctx, &models.RegisterRequest{
		Email:    "demo@questforge.local",
		Password: "demo-password",
		Name:     "Demo User",
	})
	if err != nil {
		log.Println("⚠️ Seed account already exists or failed:", err)
		return
	}

	if err := seeder.SeedSampleQuests(user.ID); err != nil {
		log.Println("⚠️ Seeding sample quests failed:", err)
	}
}
