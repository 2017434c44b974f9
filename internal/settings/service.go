package settings

import (
	"context"
	"fmt"

	"sentinel-backend/internal/llm"
)

// Service contains business logic for the settings record.
type Service struct {
	Store  Store
	NewLLM llm.Factory
}

// Get returns the stored settings.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	return s.Store.Load(ctx)
}

// Update merges a partial change into the stored settings and persists it.
func (s *Service) Update(ctx context.Context, update Update) (Settings, error) {
	current, err := s.Store.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	next := current.Apply(update)
	if err := s.Store.Save(ctx, next); err != nil {
		return Settings{}, err
	}
	return next, nil
}

// ProviderConfig maps the stored settings onto the provider client config.
// Callers get llm.ErrNotConfigured when no key has been set yet.
func (s *Service) ProviderConfig(ctx context.Context) (llm.ProviderConfig, error) {
	current, err := s.Store.Load(ctx)
	if err != nil {
		return llm.ProviderConfig{}, err
	}
	if current.APIKey == "" {
		return llm.ProviderConfig{}, llm.ErrNotConfigured
	}
	return llm.ProviderConfig{
		APIKey:    current.APIKey,
		Model:     current.Model,
		MaxTokens: current.MaxTokens,
	}, nil
}

// TestConnection performs a lightweight provider round trip and returns the
// model it verified.
func (s *Service) TestConnection(ctx context.Context) (string, error) {
	cfg, err := s.ProviderConfig(ctx)
	if err != nil {
		return "", err
	}
	if s.NewLLM == nil {
		return "", fmt.Errorf("llm factory not configured")
	}
	client, err := s.NewLLM(cfg)
	if err != nil {
		return "", err
	}
	if err := client.Ping(ctx); err != nil {
		return "", err
	}
	return cfg.Model, nil
}
