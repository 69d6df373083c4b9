package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fotoagenda/models"
)

// OllamaClient calls the Ollama chat API (cloud or self-hosted).
type OllamaClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func NewOllamaClient(baseURL, apiKey, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (o *OllamaClient) GenerateContent(ctx context.Context, system string, turns []models.Turn) (string, error) {
	messages := make([]ollamaMessage, 0, len(turns)+1)
	messages = append(messages, ollamaMessage{Role: "system", Content: system})
	for _, t := range turns {
		messages = append(messages, ollamaMessage{Role: t.Role, Content: t.Content})
	}

	payload, err := json.Marshal(ollamaChatRequest{
		Model:    o.Model,
		Messages: messages,
		Stream:   false,
		Options:  ollamaOptions{Temperature: 0.5, TopP: 0.9},
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.APIKey)
	}

	resp, err := o.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("ollama: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	return strings.TrimSpace(out.Message.Content), nil
}
