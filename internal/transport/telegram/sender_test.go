package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	t.Run("short text stays in one chunk", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Errorf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("long text splits at newlines", func(t *testing.T) {
		line := strings.Repeat("x", 60)
		text := line + "\n" + line + "\n" + line

		chunks := splitHTML(text, 100)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if len(chunk) > 100 {
				t.Errorf("chunk %d exceeds limit: %d", i, len(chunk))
			}
		}
	})

	t.Run("no content is lost", func(t *testing.T) {
		text := strings.Repeat("word ", 100)
		joined := strings.Join(splitHTML(text, 50), "")
		if strings.ReplaceAll(joined, " ", "") != strings.ReplaceAll(text, " ", "") {
			t.Error("chunks dropped content")
		}
	})
}
