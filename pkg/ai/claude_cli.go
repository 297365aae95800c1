package ai

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// claudeCLIClient shells out to a locally installed claude binary.
// Useful when the user has a Claude subscription but no API key.
type claudeCLIClient struct{}

func newClaudeCLIClient() *claudeCLIClient {
	return &claudeCLIClient{}
}

func (c *claudeCLIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "claude", "--print")
	cmd.Stdin = strings.NewReader(prompt)

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
		return "", fmt.Errorf("claude CLI failed: %s", msg)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("claude CLI returned empty output")
	}
	return out, nil
}

func (c *claudeCLIClient) Close() {}
