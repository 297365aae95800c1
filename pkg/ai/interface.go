// Package ai dispatches analysis requests to a supported AI backend,
// either an API client (Anthropic, Google) or a locally installed CLI agent.
package ai

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/poulpybifle/buslog/pkg/claude"
	"github.com/poulpybifle/buslog/pkg/gemini"
)

// Client is the common surface over all AI backends.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close()
}

// DefaultModel returns the default agent used when none is configured.
func DefaultModel() string {
	return claude.DefaultAgent
}

// SupportedModels lists every agent name NewClient accepts.
func SupportedModels() []string {
	models := []string{"claude-cli", "gemini-cli"}
	models = append(models, claude.SupportedAgents...)
	models = append(models, gemini.SupportedAgents...)
	return models
}

func IsModelSupported(model string) bool {
	for _, m := range SupportedModels() {
		if m == model {
			return true
		}
	}
	return false
}

// NewClient builds the backend for the given agent name. API-backed agents
// need the corresponding API key in the environment; CLI agents need the
// binary on PATH.
func NewClient(ctx context.Context, model string) (Client, error) {
	if model == "" {
		model = DefaultModel()
	}

	switch {
	case model == "claude-cli":
		if !IsClaudeCLIAvailable() {
			return nil, fmt.Errorf("claude CLI not found in PATH. Install it from https://docs.anthropic.com/claude-code")
		}
		return newClaudeCLIClient(), nil
	case model == "gemini-cli":
		if !IsGeminiCLIAvailable() {
			return nil, fmt.Errorf("gemini CLI not found in PATH. Install it with: npm install -g @google/gemini-cli")
		}
		return newGeminiCLIClient(), nil
	case strings.HasPrefix(model, "claude-"):
		if !claude.IsAgentSupported(model) {
			return nil, fmt.Errorf("unsupported claude agent %q. Supported: %s", model, strings.Join(claude.SupportedAgents, ", "))
		}
		return claude.NewClient(model)
	case strings.HasPrefix(model, "gemini-"):
		if !gemini.IsAgentSupported(model) {
			return nil, fmt.Errorf("unsupported gemini agent %q. Supported: %s", model, strings.Join(gemini.SupportedAgents, ", "))
		}
		return gemini.NewClient(ctx, model)
	default:
		return nil, fmt.Errorf("unknown agent %q. Supported: %s", model, strings.Join(SupportedModels(), ", "))
	}
}

// IsClaudeCLIAvailable reports whether the claude binary is on PATH.
func IsClaudeCLIAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// IsGeminiCLIAvailable reports whether the gemini binary is on PATH.
func IsGeminiCLIAvailable() bool {
	_, err := exec.LookPath("gemini")
	return err == nil
}
