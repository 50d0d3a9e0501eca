package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaService implements AssistantService using a local Ollama LLM
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		getBaseURL: func() string { return baseURL },
		getModel:   func() string { return model },
	}
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic
// getters so runtime settings changes take effect without a restart.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

// generate sends a non-streaming prompt to /api/generate.
func (o *OllamaService) generate(ctx context.Context, prompt string, numPredict int) (string, error) {
	url := o.getBaseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.2,
			"num_predict": numPredict,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Response, nil
}

// PrioritizeTasks implements AssistantService
func (o *OllamaService) PrioritizeTasks(ctx context.Context, tasks []TaskInfo) ([]RankedTask, error) {
	text, err := o.generate(ctx, PrioritizePrompt(tasks), 500)
	if err != nil {
		return nil, err
	}

	var ranked []RankedTask
	if err := json.Unmarshal([]byte(ExtractJSONArray(text)), &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse prioritization JSON: %v", err)
	}
	return ranked, nil
}

// SuggestTimeBlocks implements AssistantService
func (o *OllamaService) SuggestTimeBlocks(ctx context.Context, req TimeBlockRequest) ([]SuggestedBlock, error) {
	text, err := o.generate(ctx, TimeBlocksPrompt(req), 800)
	if err != nil {
		return nil, err
	}

	var blocks []SuggestedBlock
	if err := json.Unmarshal([]byte(ExtractJSONArray(text)), &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse time block JSON: %v", err)
	}
	return blocks, nil
}

// Chat implements AssistantService
func (o *OllamaService) Chat(ctx context.Context, message string, tasks []ChatTask) (string, error) {
	return o.generate(ctx, ChatPrompt(message, tasks), 300)
}
