package content_test

import (
	"testing"

	"github.com/draftstack/mcp-draftstack/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Go 1.24: What's New?", "go-1-24-what-s-new"},
		{"collapses separator runs", "a  --  b", "a-b"},
		{"no leading or trailing hyphen", "  !Hello!  ", "hello"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"unicode stripped", "Café au lait", "caf-au-lait"},
		{"empty input", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, content.Slugify(tt.title))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Some Fairly Long Title, With Punctuation!"
	first := content.Slugify(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, content.Slugify(title))
	}
}
