package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService implements smart AI provider routing with fallback:
// structured planning calls (prioritization, time blocking) go to
// Gemini first for quality, chat goes to Ollama first since it is
// local and free.
type FallbackService struct {
	gemini AssistantService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini AssistantService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := err.Error()
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"EOF",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(indicator)) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"RESOURCE_EXHAUSTED",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(indicator)) {
			return true
		}
	}

	return false
}

// PrioritizeTasks tries Gemini first (better structured output), falls
// back to Ollama on quota or connection errors.
func (f *FallbackService) PrioritizeTasks(ctx context.Context, tasks []TaskInfo) ([]RankedTask, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for prioritization...")
		result, err := f.gemini.PrioritizeTasks(ctx, tasks)
		if err == nil {
			log.Println("[AI] Gemini prioritization successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for prioritization...")
		result, err := f.ollama.PrioritizeTasks(ctx, tasks)
		if err == nil {
			log.Println("[AI] Ollama prioritization successful")
			return result, nil
		}

		if isConnectionError(err) && f.gemini != nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.PrioritizeTasks(ctx, tasks)
		}

		return nil, fmt.Errorf("ollama prioritization failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for prioritization")
}

// SuggestTimeBlocks tries Gemini first, falls back to Ollama.
func (f *FallbackService) SuggestTimeBlocks(ctx context.Context, req TimeBlockRequest) ([]SuggestedBlock, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for time blocking...")
		result, err := f.gemini.SuggestTimeBlocks(ctx, req)
		if err == nil {
			log.Println("[AI] Gemini time blocking successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for time blocking...")
		result, err := f.ollama.SuggestTimeBlocks(ctx, req)
		if err == nil {
			log.Println("[AI] Ollama time blocking successful")
			return result, nil
		}

		if isConnectionError(err) && f.gemini != nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.SuggestTimeBlocks(ctx, req)
		}

		return nil, fmt.Errorf("ollama time blocking failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for time blocking")
}

// Chat tries Ollama first (local, free), falls back to Gemini on
// connection error.
func (f *FallbackService) Chat(ctx context.Context, message string, tasks []ChatTask) (string, error) {
	if f.ollama != nil {
		log.Println("[AI] Trying Ollama for chat...")
		result, err := f.ollama.Chat(ctx, message, tasks)
		if err == nil {
			return result, nil
		}

		if isConnectionError(err) {
			log.Printf("[AI] Ollama connection failed: %v, falling back to Gemini", err)
		} else {
			log.Printf("[AI] Ollama error: %v, falling back to Gemini", err)
		}
	}

	if f.gemini != nil {
		log.Println("[AI] Using Gemini for chat...")
		result, err := f.gemini.Chat(ctx, message, tasks)
		if err == nil {
			return result, nil
		}

		if isQuotaError(err) && f.ollama != nil {
			log.Printf("[AI] Gemini quota exhausted: %v, retrying Ollama", err)
			return f.ollama.Chat(ctx, message, tasks)
		}

		return "", fmt.Errorf("gemini chat failed: %w", err)
	}

	return "", fmt.Errorf("no AI provider available for chat")
}
