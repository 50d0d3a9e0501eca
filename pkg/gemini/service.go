package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dayplan-backend/pkg/ai"
)

// GeminiService implements ai.AssistantService against the Gemini REST API.
type GeminiService struct {
	ApiKey string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey}
}

// generate sends a single-turn prompt to gemini-2.5-flash and returns
// the first candidate's text.
func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=" + g.ApiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no response returned")
}

// PrioritizeTasks asks Gemini for a ranked ordering of the given tasks.
func (g *GeminiService) PrioritizeTasks(ctx context.Context, tasks []ai.TaskInfo) ([]ai.RankedTask, error) {
	text, err := g.generate(ctx, ai.PrioritizePrompt(tasks))
	if err != nil {
		return nil, err
	}

	var ranked []ai.RankedTask
	if err := json.Unmarshal([]byte(ai.ExtractJSONArray(text)), &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse prioritization JSON: %w", err)
	}
	return ranked, nil
}

// SuggestTimeBlocks asks Gemini for calendar placements of the tasks.
func (g *GeminiService) SuggestTimeBlocks(ctx context.Context, req ai.TimeBlockRequest) ([]ai.SuggestedBlock, error) {
	text, err := g.generate(ctx, ai.TimeBlocksPrompt(req))
	if err != nil {
		return nil, err
	}

	var blocks []ai.SuggestedBlock
	if err := json.Unmarshal([]byte(ai.ExtractJSONArray(text)), &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse time block JSON: %w", err)
	}
	return blocks, nil
}

// Chat answers a free-text productivity question with the task snapshot
// as context.
func (g *GeminiService) Chat(ctx context.Context, message string, tasks []ai.ChatTask) (string, error) {
	return g.generate(ctx, ai.ChatPrompt(message, tasks))
}
