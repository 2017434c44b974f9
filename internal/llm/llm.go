package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the external AI provider used for sensitivity analysis.
type Client interface {
	// AnalyzeDocument submits one document for classification and returns the
	// provider's raw JSON assessment.
	AnalyzeDocument(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
	// Ping performs a lightweight round trip to verify credentials.
	Ping(ctx context.Context) error
}

// AnalyzeInput captures the inputs needed for a document analysis.
type AnalyzeInput struct {
	DocumentText string
	FileName     string
	FileType     string
	FileSize     string
	Timestamp    string
}

// ProviderConfig carries the runtime provider settings. The API key is mutable
// through the settings API, so clients are built per call via a Factory.
type ProviderConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Factory builds a Client from the current provider settings.
type Factory func(cfg ProviderConfig) (Client, error)

var (
	// ErrNotConfigured indicates the provider API key has not been set.
	ErrNotConfigured = errors.New("provider API key not configured")
	// ErrAuthentication indicates the provider rejected the API key.
	ErrAuthentication = errors.New("provider authentication failed")
	// ErrUnreachable indicates a transport-level failure reaching the provider.
	ErrUnreachable = errors.New("provider unreachable")
)

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// AnalyzeDocument returns ErrNotConfigured.
func (PlaceholderClient) AnalyzeDocument(ctx context.Context, input AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}

// Ping returns ErrNotConfigured.
func (PlaceholderClient) Ping(ctx context.Context) error {
	_ = ctx
	return ErrNotConfigured
}
