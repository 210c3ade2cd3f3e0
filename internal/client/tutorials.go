package client

import (
	"context"

	"github.com/draftstack/mcp-draftstack/internal/content"
)

const tutorialsCollection = "tutorials"

// CreateTutorialRequest carries the fields for a new tutorial draft.
type CreateTutorialRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Difficulty string `json:"difficulty,omitempty"`
	AuthorID   int    `json:"author_id,omitempty"`
	TagIDs     []int  `json:"tag_ids,omitempty"`
}

// UpdateTutorialRequest carries a partial tutorial update.
type UpdateTutorialRequest struct {
	Title      string `json:"title,omitempty"`
	Body       string `json:"body,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	AuthorID   int    `json:"author_id,omitempty"`
	TagIDs     []int  `json:"tag_ids,omitempty"`
}

// CreateTutorial creates a draft tutorial with derived slug and reading time.
func (c *CMSClient) CreateTutorial(ctx context.Context, req CreateTutorialRequest) (*Document, error) {
	attributes := map[string]any{
		"title":       req.Title,
		"body":        req.Body,
		"slug":        content.Slugify(req.Title),
		"readingTime": content.ReadingTime(req.Body),
	}
	if req.Difficulty != "" {
		attributes["difficulty"] = req.Difficulty
	}
	if req.AuthorID != 0 {
		attributes["author"] = req.AuthorID
	}
	if len(req.TagIDs) > 0 {
		attributes["tags"] = req.TagIDs
	}
	return c.createEntry(ctx, tutorialsCollection, attributes)
}

// ListTutorials lists tutorials with optional status filter and pagination.
func (c *CMSClient) ListTutorials(ctx context.Context, opts ListOptions) ([]Document, *Pagination, error) {
	return c.listEntries(ctx, tutorialsCollection, opts)
}

// GetTutorial fetches one tutorial by ID, drafts included.
func (c *CMSClient) GetTutorial(ctx context.Context, id int) (*Document, error) {
	return c.getEntry(ctx, tutorialsCollection, id)
}

// UpdateTutorial applies a partial update, re-deriving slug and reading time
// when title or body change.
func (c *CMSClient) UpdateTutorial(ctx context.Context, id int, req UpdateTutorialRequest) (*Document, error) {
	attributes := map[string]any{}
	if req.Title != "" {
		attributes["title"] = req.Title
		attributes["slug"] = content.Slugify(req.Title)
	}
	if req.Body != "" {
		attributes["body"] = req.Body
		attributes["readingTime"] = content.ReadingTime(req.Body)
	}
	if req.Difficulty != "" {
		attributes["difficulty"] = req.Difficulty
	}
	if req.AuthorID != 0 {
		attributes["author"] = req.AuthorID
	}
	if len(req.TagIDs) > 0 {
		attributes["tags"] = req.TagIDs
	}
	return c.updateEntry(ctx, tutorialsCollection, id, attributes)
}

// PublishTutorial sets the publish timestamp on a draft tutorial.
func (c *CMSClient) PublishTutorial(ctx context.Context, id int) (*Document, error) {
	return c.publishEntry(ctx, tutorialsCollection, id)
}
