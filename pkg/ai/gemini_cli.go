package ai

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// geminiCLIClient shells out to a locally installed gemini binary.
type geminiCLIClient struct{}

func newGeminiCLIClient() *geminiCLIClient {
	return &geminiCLIClient{}
}

func (c *geminiCLIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "gemini", "--prompt", prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("gemini CLI failed: %s", msg)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("gemini CLI returned empty output")
	}
	return out, nil
}

func (c *geminiCLIClient) Close() {}
