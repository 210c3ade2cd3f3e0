package client

import (
	"context"

	"github.com/draftstack/mcp-draftstack/internal/content"
)

const articlesCollection = "articles"

// CreateArticleRequest carries the fields for a new article draft.
type CreateArticleRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Summary    string `json:"summary,omitempty"`
	AuthorID   int    `json:"author_id,omitempty"`
	CategoryID int    `json:"category_id,omitempty"`
	TagIDs     []int  `json:"tag_ids,omitempty"`
}

// UpdateArticleRequest carries a partial update; zero values are omitted
// from the backend payload.
type UpdateArticleRequest struct {
	Title      string `json:"title,omitempty"`
	Body       string `json:"body,omitempty"`
	Summary    string `json:"summary,omitempty"`
	AuthorID   int    `json:"author_id,omitempty"`
	CategoryID int    `json:"category_id,omitempty"`
	TagIDs     []int  `json:"tag_ids,omitempty"`
}

// CreateArticle creates a draft article. The slug and reading time are
// derived here; the backend stores them as plain attributes.
func (c *CMSClient) CreateArticle(ctx context.Context, req CreateArticleRequest) (*Document, error) {
	attributes := map[string]any{
		"title":       req.Title,
		"body":        req.Body,
		"slug":        content.Slugify(req.Title),
		"readingTime": content.ReadingTime(req.Body),
	}
	if req.Summary != "" {
		attributes["summary"] = req.Summary
	}
	if req.AuthorID != 0 {
		attributes["author"] = req.AuthorID
	}
	if req.CategoryID != 0 {
		attributes["category"] = req.CategoryID
	}
	if len(req.TagIDs) > 0 {
		attributes["tags"] = req.TagIDs
	}
	return c.createEntry(ctx, articlesCollection, attributes)
}

// ListArticles lists articles with optional status filter and pagination.
func (c *CMSClient) ListArticles(ctx context.Context, opts ListOptions) ([]Document, *Pagination, error) {
	return c.listEntries(ctx, articlesCollection, opts)
}

// GetArticle fetches one article by ID, drafts included.
func (c *CMSClient) GetArticle(ctx context.Context, id int) (*Document, error) {
	return c.getEntry(ctx, articlesCollection, id)
}

// UpdateArticle applies a partial update. A changed title re-derives the
// slug, a changed body re-derives the reading time.
func (c *CMSClient) UpdateArticle(ctx context.Context, id int, req UpdateArticleRequest) (*Document, error) {
	attributes := map[string]any{}
	if req.Title != "" {
		attributes["title"] = req.Title
		attributes["slug"] = content.Slugify(req.Title)
	}
	if req.Body != "" {
		attributes["body"] = req.Body
		attributes["readingTime"] = content.ReadingTime(req.Body)
	}
	if req.Summary != "" {
		attributes["summary"] = req.Summary
	}
	if req.AuthorID != 0 {
		attributes["author"] = req.AuthorID
	}
	if req.CategoryID != 0 {
		attributes["category"] = req.CategoryID
	}
	if len(req.TagIDs) > 0 {
		attributes["tags"] = req.TagIDs
	}
	return c.updateEntry(ctx, articlesCollection, id, attributes)
}

// PublishArticle sets the publish timestamp on a draft article.
func (c *CMSClient) PublishArticle(ctx context.Context, id int) (*Document, error) {
	return c.publishEntry(ctx, articlesCollection, id)
}
