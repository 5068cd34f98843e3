package assistant

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/patch"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// GeminiAssistant implements Assistant on top of the Gemini API.
type GeminiAssistant struct {
	client *genai.Client
	model  string
}

// NewGeminiAssistant creates a Gemini-backed assistant.
func NewGeminiAssistant(ctx context.Context, apiKey, model string) (*GeminiAssistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAssistant{client: client, model: model}, nil
}

// ProposePlanEdits sends the plan and instruction to the model and parses
// the response through the patch schema. Anything the schema rejects is
// discarded wholesale rather than partially applied.
func (a *GeminiAssistant) ProposePlanEdits(ctx context.Context, plan *domain.WorkoutPlan, instruction string) ([]patch.Patch, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	model := a.client.GenerativeModel(a.model)
	model.SetTemperature(0.1) // low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	prompt := buildPrompt(string(planJSON), instruction)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate edit proposal: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	patches, err := patch.Parse([]byte(cleanJSONBlock(text)))
	if err != nil {
		return nil, fmt.Errorf("assistant returned an invalid edit proposal: %w", err)
	}
	return patches, nil
}

// Close releases the underlying client.
func (a *GeminiAssistant) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

func buildPrompt(planJSON, instruction string) string {
	var sb strings.Builder
	sb.WriteString("You are a fitness coach editing a workout plan.\n")
	sb.WriteString("Respond ONLY with a JSON array of edit patches. Each patch is an object with:\n")
	sb.WriteString(`  "type": one of "replace_exercise", "add_exercise", "remove_exercise", "change_prescription"` + "\n")
	sb.WriteString(`  "week" (integer, 1-based), "day" (weekday name), "position" (0-based index)` + "\n")
	sb.WriteString(`  for replace/add: "exerciseId" (24-char hex), "exerciseName", optional "bodyPart"` + "\n")
	sb.WriteString(`  for change_prescription: "sets" object with "count" and either "reps" or "repsRange"` + "\n")
	sb.WriteString("Never place the same exercise twice in one workout.\n\n")
	sb.WriteString("Current plan:\n")
	sb.WriteString(planJSON)
	sb.WriteString("\n\nUser request: ")
	sb.WriteString(instruction)
	return sb.String()
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
