package content

import "unicode/utf8"

// DefaultTrimLimit is the rune budget applied to rich-text fields in list
// responses. Full bodies stay available through the get_* tools.
const DefaultTrimLimit = 500

const ellipsis = "…"

// trimmableFields are the rich-text attributes worth trimming in list
// responses. Everything else passes through untouched.
var trimmableFields = map[string]bool{
	"body":        true,
	"content":     true,
	"description": true,
}

// TrimFields walks a decoded JSON document and truncates known rich-text
// string fields to limit runes, appending an ellipsis when anything was cut.
// The input is modified in place and also returned for chaining.
func TrimFields(doc any, limit int) any {
	if limit <= 0 {
		limit = DefaultTrimLimit
	}
	trimValue(doc, limit)
	return doc
}

func trimValue(v any, limit int) {
	switch val := v.(type) {
	case map[string]any:
		for k, field := range val {
			if s, ok := field.(string); ok && trimmableFields[k] {
				val[k] = TrimString(s, limit)
				continue
			}
			trimValue(field, limit)
		}
	case []any:
		for _, item := range val {
			trimValue(item, limit)
		}
	}
}

// TrimString truncates s to limit runes, appending an ellipsis if truncated.
func TrimString(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ellipsis
}
