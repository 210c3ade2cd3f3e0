package mcp

import (
	"fmt"
	"strings"
)

const draftstackScheme = "draftstack://"

// getAllResources returns the list of static resource metadata.
func getAllResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         "draftstack://docs/tool-reference",
			Name:        "Draftstack Tool Reference",
			Description: "List of MCP tools and when to use them",
			MimeType:    "text/plain",
		},
		{
			URI:         "draftstack://docs/content-model",
			Name:        "Content Model",
			Description: "Fields and derived attributes per content kind",
			MimeType:    "text/plain",
		},
		{
			URI:         "draftstack://docs/publishing",
			Name:        "Publishing Workflow",
			Description: "Draft vs published and how publish_* works",
			MimeType:    "text/plain",
		},
	}
}

// readResource returns content for a known URI.
func readResource(uri string) ([]ResourceContent, error) {
	if !strings.HasPrefix(uri, draftstackScheme) {
		return nil, &ResourceNotFoundError{URI: uri}
	}
	path := strings.Trim(strings.TrimPrefix(uri, draftstackScheme), "/")
	if strings.Contains(path, "..") {
		return nil, &ResourceNotFoundError{URI: uri}
	}
	switch path {
	case "docs/tool-reference":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticToolReference}}, nil
	case "docs/content-model":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticContentModel}}, nil
	case "docs/publishing":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticPublishing}}, nil
	default:
		return nil, &ResourceNotFoundError{URI: uri}
	}
}

// ResourceNotFoundError is returned for unknown resource URIs.
type ResourceNotFoundError struct {
	URI string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URI)
}

//nolint:lll // long single-line content strings for static docs
const staticToolReference = `create_article/create_tutorial/create_event: Create a draft (slug and reading time derived). list_articles/list_tutorials/list_events: List with optional status filter (draft, published) and pagination; long bodies are trimmed. get_article/get_tutorial/get_event: Full entry by ID. update_*: Partial update by ID. publish_*: Set the publish timestamp. list_authors/list_categories/list_tags: Metadata lookups for IDs.`

//nolint:lll // static doc string for the content model
const staticContentModel = `Articles: title, body (markdown), summary, author, category, tags; derived slug and readingTime. Tutorials: title, body (markdown), difficulty (beginner/intermediate/advanced), author, tags; derived slug and readingTime. Events: title, description, startsAt/endsAt (RFC 3339), location, category; derived slug. readingTime = ceil(words/200) counted from the markdown prose.`

//nolint:lll // static doc string for the publishing workflow
const staticPublishing = `Every entry starts as a draft (publishedAt is null). publish_* sets publishedAt to the current time; the backend then serves the entry publicly. There is no unpublish tool; clear publishedAt in the CMS admin if needed. list_* defaults to both states, or filter with status.`
