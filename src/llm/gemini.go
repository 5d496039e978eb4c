package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"google.golang.org/genai"
)

// Gemini models used by the assistant. Overridable via env for rollouts.
const (
	defaultDraftModel = "gemini-2.5-flash"
	defaultImageModel = "imagen-3.0-generate-002"
)

var (
	client     *genai.Client
	clientOnce sync.Once
	clientErr  error
)

func getClient(ctx context.Context) (*genai.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			clientErr = errors.New("GEMINI_API_KEY environment variable not set")
			return
		}
		client, clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: apiKey,
		})
	})
	return client, clientErr
}

func draftModel() string {
	if m := os.Getenv("GEMINI_DRAFT_MODEL"); m != "" {
		return m
	}
	return defaultDraftModel
}

func imageModel() string {
	if m := os.Getenv("GEMINI_IMAGE_MODEL"); m != "" {
		return m
	}
	return defaultImageModel
}

// RawDraft is the model's JSON output shape for a quest draft. The response
// schema below forces it, so unmarshalling is strict.
type RawDraft struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Questions   []RawQuestion `json:"questions"`
}

type RawQuestion struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsRequired  bool     `json:"isRequired"`
	Options     []string `json:"options"`
}

var draftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {
						Type: genai.TypeString,
						Enum: []string{
							"shortText", "paragraph", "multipleChoice",
							"checkboxes", "dropdown", "date", "time",
						},
					},
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"isRequired":  {Type: genai.TypeBoolean},
					"options": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"type", "title"},
			},
		},
	},
	Required: []string{"title", "questions"},
}

// DraftQuest asks Gemini to draft a quest from a short brief.
func DraftQuest(ctx context.Context, brief string, questionCount int) (*RawDraft, error) {
	c, err := getClient(ctx)
	if err != nil {
		return nil, err
	}

	if questionCount <= 0 {
		questionCount = 5
	}

	prompt := fmt.Sprintf(
		"Draft a form with about %d questions for the following brief. "+
			"Choice questions must carry their options; free-text questions must not. "+
			"Brief: %s", questionCount, brief)

	result, err := c.Models.GenerateContent(ctx, draftModel(), genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   draftSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("draft generation failed: %w", err)
	}

	var draft RawDraft
	if err := json.Unmarshal([]byte(result.Text()), &draft); err != nil {
		return nil, fmt.Errorf("draft response was not valid JSON: %w", err)
	}
	return &draft, nil
}

// GenerateImage produces one background image for a prompt. Returns the raw
// bytes and their MIME type.
func GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	c, err := getClient(ctx)
	if err != nil {
		return nil, "", err
	}

	result, err := c.Models.GenerateImages(ctx, imageModel(),
		"Abstract form background, no text: "+prompt,
		&genai.GenerateImagesConfig{NumberOfImages: 1})
	if err != nil {
		return nil, "", fmt.Errorf("image generation failed: %w", err)
	}

	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return nil, "", errors.New("no image returned")
	}

	img := result.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return img.ImageBytes, mime, nil
}
