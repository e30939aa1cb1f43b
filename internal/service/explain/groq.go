package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"TradePulse/pkg/config"
	xhttp "TradePulse/pkg/http"
)

// ChatClient is the chat-completions capability the explainer depends on.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GroqClient talks to a Groq / OpenAI compatible /chat/completions endpoint.
// One attempt per call; the configured timeout bounds the wait.
type GroqClient struct {
	http        *xhttp.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

func NewGroqClient(cfg *config.Config) *GroqClient {
	return &GroqClient{
		http:        xhttp.NewClient(xhttp.WithTimeout(cfg.AI.Timeout)),
		baseURL:     normalizeBaseURL(cfg.AI.BaseURL),
		apiKey:      cfg.AI.APIKey,
		model:       cfg.AI.Model,
		temperature: cfg.AI.Temperature,
		maxTokens:   cfg.AI.MaxTokens,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends system and user messages and extracts the first completion.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		// Without a credential the provider would reject us anyway; fail
		// fast so the caller can fall back without a network round trip.
		return "", errors.New("api credential not configured")
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	var out chatResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
			"Content-Type":  "application/json",
		},
		Body: body,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return out.Choices[0].Message.Content, nil
}

// normalizeBaseURL tolerates configs that already carry the completions path.
func normalizeBaseURL(u string) string {
	u = strings.TrimRight(u, "/")
	return strings.TrimSuffix(u, "/chat/completions")
}

var _ ChatClient = (*GroqClient)(nil)
