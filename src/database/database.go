package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must only run once
	connectErr error

	UserCollection          *mongo.Collection
	QuestCollection         *mongo.Collection
	QuestionCollection      *mongo.Collection
	ResponseCollection      *mongo.Collection
	BackgroundJobCollection *mongo.Collection
)

const dbName = "QuestForgeDB"

// ConnectMongoDB connects to MongoDB exactly once and wires up the shared
// collection handles.
func ConnectMongoDB() error {

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = client.Database(dbName).Collection("users")
		QuestCollection = client.Database(dbName).Collection("quests")
		QuestionCollection = client.Database(dbName).Collection("questions")
		ResponseCollection = client.Database(dbName).Collection("responses")
		BackgroundJobCollection = client.Database(dbName).Collection("backgroundJobs")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetClient returns the shared client. The question engines need it to open
// sessions for multi-document transactions.
func GetClient() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}
