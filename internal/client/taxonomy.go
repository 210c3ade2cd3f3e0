package client

import "context"

// Metadata lookups. Authors, categories, and tags are owned entirely by the
// backend; the tools only list them so callers can reference their IDs when
// creating content.

// ListAuthors lists all authors.
func (c *CMSClient) ListAuthors(ctx context.Context) ([]Document, error) {
	docs, _, err := c.listEntries(ctx, "authors", ListOptions{})
	return docs, err
}

// ListCategories lists all categories.
func (c *CMSClient) ListCategories(ctx context.Context) ([]Document, error) {
	docs, _, err := c.listEntries(ctx, "categories", ListOptions{})
	return docs, err
}

// ListTags lists all tags.
func (c *CMSClient) ListTags(ctx context.Context) ([]Document, error) {
	docs, _, err := c.listEntries(ctx, "tags", ListOptions{})
	return docs, err
}
