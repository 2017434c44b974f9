package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/shared/telemetry"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"

	pingMaxTokens = 50
	pingMessage   = "Say 'API connection successful' in exactly those words."
)

// Client implements llm.Client against the Anthropic Messages API.
type Client struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an Anthropic client from the current provider settings.
func NewClient(cfg llm.ProviderConfig) (llm.Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, llm.ErrNotConfigured
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("provider model is required")
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("ANTHROPIC_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: maxTokens,
		baseURL:   apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type messageParam struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []messageParam `json:"messages"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Type    string `json:"type"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// AnalyzeDocument sends the document with the analysis system prompt and
// returns the assessment JSON. Markdown fences around the output are stripped;
// everything else is left for schema validation upstream.
func (c *Client) AnalyzeDocument(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	req := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    analysisSystemPrompt,
		Messages: []messageParam{
			{Role: "user", Content: BuildUserMessage(input)},
		},
	}
	text, usage, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	logUsage(c.model, usage)
	return json.RawMessage(stripFences(text)), nil
}

// Ping verifies the API key with a minimal request.
func (c *Client) Ping(ctx context.Context) error {
	req := messagesRequest{
		Model:     c.model,
		MaxTokens: pingMaxTokens,
		Messages: []messageParam{
			{Role: "user", Content: pingMessage},
		},
	}
	_, _, err := c.send(ctx, req)
	return err
}

func (c *Client) send(ctx context.Context, reqBody messagesRequest) (string, *usageInfo, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", nil, fmt.Errorf("anthropic request timeout: %w", llm.ErrUnreachable)
		}
		return "", nil, fmt.Errorf("anthropic request: %v: %w", err, llm.ErrUnreachable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("anthropic response read: %v: %w", err, llm.ErrUnreachable)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", nil, fmt.Errorf("anthropic response parse: %w", err)
	}
	if parsed.Error != nil {
		if resp.StatusCode == http.StatusUnauthorized || parsed.Error.Type == "authentication_error" {
			return "", nil, fmt.Errorf("anthropic: %s: %w", parsed.Error.Message, llm.ErrAuthentication)
		}
		return "", nil, fmt.Errorf("anthropic error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Content) == 0 {
		return "", nil, fmt.Errorf("anthropic response missing content")
	}

	text := strings.TrimSpace(parsed.Content[0].Text)
	if text == "" {
		return "", nil, fmt.Errorf("anthropic response empty content")
	}
	return text, toUsage(parsed.Usage), nil
}

type usageInfo struct {
	InputTokens  int
	OutputTokens int
}

func toUsage(raw *struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}) *usageInfo {
	if raw == nil {
		return nil
	}
	return &usageInfo{
		InputTokens:  raw.InputTokens,
		OutputTokens: raw.OutputTokens,
	}
}

func logUsage(model string, usage *usageInfo) {
	if usage == nil {
		telemetry.Info("llm.response", map[string]any{"model": model})
		return
	}
	telemetry.Info("llm.response", map[string]any{
		"model":         model,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	})
}

// stripFences removes a markdown code fence wrapping, which some models emit
// despite the JSON-only instruction.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

var _ llm.Client = (*Client)(nil)
