// Package openai implements summarization against an OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/doctldr"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// temperature is fixed; summaries should be stable, not creative.
	temperature = 0.3

	systemPrompt = "You are a technical documentation summarizer. Your goal is to create " +
		"ultra-concise summaries that preserve critical technical information while " +
		"eliminating redundancy."

	userPromptPrefix = "Create a concise technical summary of the following documentation. " +
		"Focus on preserving critical technical information while removing redundant or " +
		"commonly known details. Use precise technical terminology. The summary should be " +
		"optimized for use as context in other LLM workflows.\n\n"
)

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ensure Summarizer implements doctldr.Summarizer at compile time.
var _ doctldr.Summarizer = (*Summarizer)(nil)

// Summarizer calls the chat completions API to summarize document
// content. One request per document, no retries, no streaming; a hung
// call blocks until the context or client timeout fires.
type Summarizer struct {
	// BaseURL may be overridden for tests or compatible endpoints.
	BaseURL string

	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

// NewSummarizer creates a Summarizer for the given model.
func NewSummarizer(apiKey, model string, maxTokens int) *Summarizer {
	return &Summarizer{
		BaseURL:   defaultBaseURL,
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// Summarize returns a summary of content using the first choice of the
// API response.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + content},
		},
		MaxTokens:   s.maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", doctldr.Errorf(doctldr.EUNAVAILABLE, "api error (status %d): %s", resp.StatusCode, data)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed api response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", doctldr.Errorf(doctldr.EINTERNAL, "api returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
