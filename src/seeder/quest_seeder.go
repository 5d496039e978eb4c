package seeder

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/quests"
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedSampleQuests creates sample quests for testing
func SeedSampleQuests(ownerID primitive.ObjectID) error {
	ctx := context.Background()

	// Sample Quest 1: Course Feedback
	feedbackQuest := &models.CreateQuestRequest{
		Title:       "Course Feedback",
		Description: "Tell us how the course went for you",
		Settings:    models.QuestSettings{ShowProgress: true},
		Questions: []models.CreateQuestionRequest{
			{
				Type:       models.QuestionShortText,
				Title:      "What is your name?",
				IsRequired: true,
			},
			{
				Type:       models.QuestionParagraph,
				Title:      "Describe your overall experience with this course.",
				IsRequired: true,
			},
			{
				Type:       models.QuestionMultipleChoice,
				Title:      "How would you rate the course difficulty?",
				IsRequired: true,
				Options: []models.Option{
					{Value: "Very Easy"}, {Value: "Easy"}, {Value: "Moderate"},
					{Value: "Difficult"}, {Value: "Very Difficult"},
				},
			},
			{
				Type:  models.QuestionCheckboxes,
				Title: "Which parts helped you most? (Select all that apply)",
				Options: []models.Option{
					{Value: "Lectures"}, {Value: "Assignments"}, {Value: "Group Projects"},
					{Value: "Office Hours"}, {Value: "Online Resources"},
				},
			},
			{
				Type:       models.QuestionDropdown,
				Title:      "What is your major?",
				IsRequired: true,
				Options: []models.Option{
					{Value: "Computer Science"}, {Value: "Engineering"},
					{Value: "Business"}, {Value: "Arts"}, {Value: "Other"},
				},
			},
			{
				Type:  models.QuestionDate,
				Title: "When did you finish the final project?",
			},
		},
	}

	// Sample Quest 2: Event RSVP
	rsvpQuest := &models.CreateQuestRequest{
		Title:       "Year-End Event RSVP",
		Description: "Let us know if you are coming",
		Settings:    models.QuestSettings{ShuffleQuestions: false},
		Questions: []models.CreateQuestionRequest{
			{
				Type:       models.QuestionShortText,
				Title:      "Full name",
				IsRequired: true,
			},
			{
				Type:       models.QuestionMultipleChoice,
				Title:      "Will you attend?",
				IsRequired: true,
				Options:    []models.Option{{Value: "Yes"}, {Value: "No"}, {Value: "Maybe"}},
			},
			{
				Type:  models.QuestionTime,
				Title: "What time will you arrive?",
			},
		},
	}

	for _, req := range []*models.CreateQuestRequest{feedbackQuest, rsvpQuest} {
		created, err := quests.CreateQuest(ctx, ownerID, req)
		if err != nil {
			log.Println("❌ Failed to seed quest:", err)
			return err
		}
		log.Printf("✅ Seeded quest %q with %d questions",
			created.Quest.Title, len(created.Questions))
	}

	return nil
}
