package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "first line after header",
			content: "# Workflow: Checkout\n\n## Description\n\nHandles the checkout funnel.\n\n## Déclencheurs\n",
			want:    "Handles the checkout funnel.",
		},
		{
			name:    "placeholder italics trimmed",
			content: "## Description\n\n_What this workflow does._\n",
			want:    "What this workflow does.",
		},
		{
			name:    "no description header",
			content: "# Workflow: Checkout\n\nsome text\n",
			want:    "",
		},
		{
			name:    "empty section followed by next header",
			content: "## Description\n\n## Déclencheurs\n\n- CLI\n",
			want:    "",
		},
		{
			name:    "header at end of file",
			content: "intro\n\n## Description\n",
			want:    "",
		},
		{
			name:    "reordered sections still found",
			content: "## Notes & Annotations\n\nnote\n\n## Description\n\nLate description.\n",
			want:    "Late description.",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDescription(tt.content))
		})
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"user-authentication", "User Authentication"},
		{"checkout", "Checkout"},
		{"a-b-c", "A B C"},
		{"v2-payment", "V2 Payment"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleFromSlug(tt.slug), "slug %q", tt.slug)
	}
}
