package client

import (
	"context"

	"github.com/draftstack/mcp-draftstack/internal/content"
)

const eventsCollection = "events"

// CreateEventRequest carries the fields for a new event draft. StartsAt and
// EndsAt are RFC 3339 timestamps passed through to the backend unparsed.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at,omitempty"`
	Location    string `json:"location,omitempty"`
	CategoryID  int    `json:"category_id,omitempty"`
}

// UpdateEventRequest carries a partial event update.
type UpdateEventRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	Location    string `json:"location,omitempty"`
	CategoryID  int    `json:"category_id,omitempty"`
}

// CreateEvent creates a draft event with a derived slug.
func (c *CMSClient) CreateEvent(ctx context.Context, req CreateEventRequest) (*Document, error) {
	attributes := map[string]any{
		"title":    req.Title,
		"slug":     content.Slugify(req.Title),
		"startsAt": req.StartsAt,
	}
	if req.Description != "" {
		attributes["description"] = req.Description
	}
	if req.EndsAt != "" {
		attributes["endsAt"] = req.EndsAt
	}
	if req.Location != "" {
		attributes["location"] = req.Location
	}
	if req.CategoryID != 0 {
		attributes["category"] = req.CategoryID
	}
	return c.createEntry(ctx, eventsCollection, attributes)
}

// ListEvents lists events with optional status filter and pagination.
func (c *CMSClient) ListEvents(ctx context.Context, opts ListOptions) ([]Document, *Pagination, error) {
	return c.listEntries(ctx, eventsCollection, opts)
}

// GetEvent fetches one event by ID, drafts included.
func (c *CMSClient) GetEvent(ctx context.Context, id int) (*Document, error) {
	return c.getEntry(ctx, eventsCollection, id)
}

// UpdateEvent applies a partial update, re-deriving the slug when the title
// changes.
func (c *CMSClient) UpdateEvent(ctx context.Context, id int, req UpdateEventRequest) (*Document, error) {
	attributes := map[string]any{}
	if req.Title != "" {
		attributes["title"] = req.Title
		attributes["slug"] = content.Slugify(req.Title)
	}
	if req.Description != "" {
		attributes["description"] = req.Description
	}
	if req.StartsAt != "" {
		attributes["startsAt"] = req.StartsAt
	}
	if req.EndsAt != "" {
		attributes["endsAt"] = req.EndsAt
	}
	if req.Location != "" {
		attributes["location"] = req.Location
	}
	if req.CategoryID != 0 {
		attributes["category"] = req.CategoryID
	}
	return c.updateEntry(ctx, eventsCollection, id, attributes)
}

// PublishEvent sets the publish timestamp on a draft event.
func (c *CMSClient) PublishEvent(ctx context.Context, id int) (*Document, error) {
	return c.publishEntry(ctx, eventsCollection, id)
}
