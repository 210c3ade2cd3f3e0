package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// wordsPerMinute is the reading speed assumed for the estimate.
const wordsPerMinute = 200

// ReadingTime estimates reading time in minutes for a markdown body:
// ceil(words / 200), minimum 1 minute for any non-empty prose. The word
// count comes from the markdown AST so syntax, link URLs, and fenced code
// block markers do not inflate it.
func ReadingTime(body string) int {
	words := WordCount(body)
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// WordCount counts the prose words in a markdown body.
func WordCount(body string) int {
	if strings.TrimSpace(body) == "" {
		return 0
	}

	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			count += len(strings.Fields(string(node.Segment.Value(source))))
		case *ast.CodeBlock:
			count += countSegmentWords(node.Lines(), source)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			count += countSegmentWords(node.Lines(), source)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return count
}

func countSegmentWords(lines *text.Segments, source []byte) int {
	count := 0
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		count += len(strings.Fields(string(seg.Value(source))))
	}
	return count
}
