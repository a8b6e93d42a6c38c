// Package aisvc - AI outreach helpers: generated call scripts and emails,
// market research and follow-up suggestions.
package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

const perplexityURL = "https://api.perplexity.ai/chat/completions"

// perplexityModel is the online model used for research prompts.
const perplexityModel = "llama-3.1-sonar-small-128k-online"

const perplexityTimeout = 30 * time.Second

// PerplexityClient calls the Perplexity chat completions API.
type PerplexityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewPerplexityClient creates a client. An empty key is allowed; Ask reports
// the missing configuration so callers can degrade gracefully.
func NewPerplexityClient(apiKey string) *PerplexityClient {
	return &PerplexityClient{
		httpClient: &http.Client{Timeout: perplexityTimeout},
		baseURL:    perplexityURL,
		apiKey:     apiKey,
	}
}

// Configured reports whether an API key is present.
func (c *PerplexityClient) Configured() bool {
	return c.apiKey != ""
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityRequest struct {
	Model     string              `json:"model"`
	Messages  []perplexityMessage `json:"messages"`
	MaxTokens int                 `json:"max_tokens,omitempty"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask sends one system+user prompt pair and returns the answer text.
func (c *PerplexityClient) Ask(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if !c.Configured() {
		return "", common.NewError(common.ErrCodeConfiguration,
			"AI research provider key is not configured", common.StatusInternalServerError, nil)
	}

	body, err := json.Marshal(perplexityRequest{
		Model: perplexityModel,
		Messages: []perplexityMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", common.NewError(common.ErrCodeProvider, err.Error(), common.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", common.NewError(common.ErrCodeProvider,
			"AI research provider returned an error", resp.StatusCode, nil)
	}

	var parsed perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", common.NewError(common.ErrCodeProvider,
			"AI research provider returned an unreadable payload", common.StatusBadGateway, nil)
	}
	if len(parsed.Choices) == 0 {
		return "", common.NewError(common.ErrCodeProvider,
			"AI research provider returned no answer", common.StatusBadGateway, nil)
	}
	return parsed.Choices[0].Message.Content, nil
}
