package claude

import (
	"testing"
)

func TestIsAgentSupported(t *testing.T) {
	tests := []struct {
		agent string
		want  bool
	}{
		{"claude-sonnet-4", true},
		{"claude-sonnet-4-5", true},
		{"claude-opus-4", true},
		{"claude-haiku-4-5", true},
		{"gemini-2.5-flash", false},
		{"gpt-4", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAgentSupported(tt.agent); got != tt.want {
			t.Errorf("IsAgentSupported(%q) = %v, want %v", tt.agent, got, tt.want)
		}
	}
}

func TestModelMapping(t *testing.T) {
	tests := []struct {
		agent string
		model string
	}{
		{"claude-sonnet-4", "claude-sonnet-4-20250514"},
		{"claude-sonnet-4-5", "claude-sonnet-4-5-20250929"},
		{"claude-opus-4", "claude-opus-4-20250514"},
		{"claude-haiku-4", "claude-haiku-4-20250514"},
	}

	for _, tt := range tests {
		got, ok := modelMapping[tt.agent]
		if !ok {
			t.Errorf("modelMapping missing entry for %q", tt.agent)
			continue
		}
		if got != tt.model {
			t.Errorf("modelMapping[%q] = %q, want %q", tt.agent, got, tt.model)
		}
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := NewClient("claude-sonnet-4"); err == nil {
		t.Error("expected error when ANTHROPIC_API_KEY is not set")
	}
}

func TestNewClientMapsModel(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	client, err := NewClient("claude-sonnet-4")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if client.model != "claude-sonnet-4-20250514" {
		t.Errorf("model = %q, want %q", client.model, "claude-sonnet-4-20250514")
	}
}

func TestNewClientDefaultsModel(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	if client.model != modelMapping[DefaultAgent] {
		t.Errorf("model = %q, want default %q", client.model, modelMapping[DefaultAgent])
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", errString("rate_limit_error: too many requests"), true},
		{"overloaded", errString("overloaded_error"), true},
		{"529", errString("HTTP 529"), true},
		{"auth", errString("401 authentication_error"), false},
		{"not found", errString("404 not_found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }
