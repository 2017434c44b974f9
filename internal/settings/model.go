package settings

// Settings is the persisted provider configuration. It is created with
// defaults on first read and only ever changed through the settings API.
type Settings struct {
	APIKey            string `json:"api_key"`
	Model             string `json:"model"`
	MaxTokens         int    `json:"max_tokens"`
	AutoDeleteUploads bool   `json:"auto_delete_uploads"`
	RetentionDays     int    `json:"retention_days"`
}

// Update carries a partial settings change; nil fields are left untouched.
type Update struct {
	APIKey            *string `json:"api_key"`
	Model             *string `json:"model"`
	MaxTokens         *int    `json:"max_tokens"`
	AutoDeleteUploads *bool   `json:"auto_delete_uploads"`
	RetentionDays     *int    `json:"retention_days"`
}

// Masked is the settings read model; the API key never leaves the server in
// full.
type Masked struct {
	APIKey            string `json:"api_key"`
	APIKeySet         bool   `json:"api_key_set"`
	Model             string `json:"model"`
	MaxTokens         int    `json:"max_tokens"`
	AutoDeleteUploads bool   `json:"auto_delete_uploads"`
	RetentionDays     int    `json:"retention_days"`
}

// ModelInfo describes one selectable provider model.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Defaults returns the settings used before any update has been stored.
func Defaults() Settings {
	return Settings{
		APIKey:            "",
		Model:             "claude-sonnet-4-20250514",
		MaxTokens:         4096,
		AutoDeleteUploads: true,
		RetentionDays:     30,
	}
}

// AvailableModels is the static provider model catalogue.
func AvailableModels() []ModelInfo {
	return []ModelInfo{
		{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", Description: "Fast and capable"},
		{ID: "claude-opus-4-20250514", Name: "Claude Opus 4", Description: "Most capable"},
		{ID: "claude-haiku-4-20250514", Name: "Claude Haiku 4", Description: "Fastest, most economical"},
	}
}

// Apply merges an update into the settings.
func (s Settings) Apply(u Update) Settings {
	if u.APIKey != nil {
		s.APIKey = *u.APIKey
	}
	if u.Model != nil {
		s.Model = *u.Model
	}
	if u.MaxTokens != nil {
		s.MaxTokens = *u.MaxTokens
	}
	if u.AutoDeleteUploads != nil {
		s.AutoDeleteUploads = *u.AutoDeleteUploads
	}
	if u.RetentionDays != nil {
		s.RetentionDays = *u.RetentionDays
	}
	return s
}

// Mask produces the read model with the API key obscured.
func (s Settings) Mask() Masked {
	return Masked{
		APIKey:            MaskKey(s.APIKey),
		APIKeySet:         s.APIKey != "",
		Model:             s.Model,
		MaxTokens:         s.MaxTokens,
		AutoDeleteUploads: s.AutoDeleteUploads,
		RetentionDays:     s.RetentionDays,
	}
}

// MaskKey keeps enough of the key to recognize it without exposing it.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 12 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	return "***configured***"
}
