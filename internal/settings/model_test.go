package settings

import "testing"

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "empty", key: "", want: ""},
		{name: "short", key: "sk-12345", want: "***configured***"},
		{name: "boundary twelve", key: "abcdefghijkl", want: "***configured***"},
		{name: "long", key: "sk-ant-REDACTED", want: "sk-ant-a...alue"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskKey(tt.key); got != tt.want {
				t.Fatalf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestApplyPartialUpdate(t *testing.T) {
	current := Defaults()
	model := "claude-opus-4-20250514"
	retention := 90

	next := current.Apply(Update{Model: &model, RetentionDays: &retention})

	if next.Model != model {
		t.Fatalf("expected model %q, got %q", model, next.Model)
	}
	if next.RetentionDays != 90 {
		t.Fatalf("expected retention 90, got %d", next.RetentionDays)
	}
	// Untouched fields keep their previous values.
	if next.MaxTokens != current.MaxTokens {
		t.Fatalf("expected max_tokens unchanged at %d, got %d", current.MaxTokens, next.MaxTokens)
	}
	if next.AutoDeleteUploads != current.AutoDeleteUploads {
		t.Fatalf("expected auto_delete_uploads unchanged")
	}
}

func TestApplyCanDisableFlag(t *testing.T) {
	disabled := false
	next := Defaults().Apply(Update{AutoDeleteUploads: &disabled})
	if next.AutoDeleteUploads {
		t.Fatalf("expected auto_delete_uploads false after update")
	}
}

func TestMaskNeverLeaksFullKey(t *testing.T) {
	s := Defaults()
	s.APIKey = "sk-ant-REDACTED"

	masked := s.Mask()
	if masked.APIKey == s.APIKey {
		t.Fatalf("masked settings leaked the full API key")
	}
	if !masked.APIKeySet {
		t.Fatalf("expected api_key_set true")
	}
}
