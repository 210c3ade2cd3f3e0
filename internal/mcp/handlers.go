package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/draftstack/mcp-draftstack/internal/client"
	"github.com/draftstack/mcp-draftstack/internal/content"
)

// routeToolCall dispatches a tools/call to the handler for the named tool.
// Backend and auth failures come back as error-flagged tool results, not
// JSON-RPC errors; malformed or incomplete arguments are InvalidParams.
func (s *Server) routeToolCall(ctx context.Context, id any, name string, arguments json.RawMessage) *Response {
	switch name {
	// Article tools
	case "create_article":
		return s.handleCreateArticle(ctx, id, arguments)
	case "list_articles":
		return s.handleListArticles(ctx, id, arguments)
	case "get_article":
		return s.handleGetArticle(ctx, id, arguments)
	case "update_article":
		return s.handleUpdateArticle(ctx, id, arguments)
	case "publish_article":
		return s.handlePublishArticle(ctx, id, arguments)

	// Tutorial tools
	case "create_tutorial":
		return s.handleCreateTutorial(ctx, id, arguments)
	case "list_tutorials":
		return s.handleListTutorials(ctx, id, arguments)
	case "get_tutorial":
		return s.handleGetTutorial(ctx, id, arguments)
	case "update_tutorial":
		return s.handleUpdateTutorial(ctx, id, arguments)
	case "publish_tutorial":
		return s.handlePublishTutorial(ctx, id, arguments)

	// Event tools
	case "create_event":
		return s.handleCreateEvent(ctx, id, arguments)
	case "list_events":
		return s.handleListEvents(ctx, id, arguments)
	case "get_event":
		return s.handleGetEvent(ctx, id, arguments)
	case "update_event":
		return s.handleUpdateEvent(ctx, id, arguments)
	case "publish_event":
		return s.handlePublishEvent(ctx, id, arguments)

	// Metadata tools
	case "list_authors":
		return s.handleListAuthors(ctx, id)
	case "list_categories":
		return s.handleListCategories(ctx, id)
	case "list_tags":
		return s.handleListTags(ctx, id)

	default:
		return s.toolError(id, "Unknown tool: "+name)
	}
}

// Article tool handlers

func (s *Server) handleCreateArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args client.CreateArticleRequest
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.Title == "" || args.Body == "" {
		return s.errorResponse(id, InvalidParams, "title and body are required")
	}

	doc, err := s.cms.CreateArticle(ctx, args)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to create article: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleListArticles(ctx context.Context, id any, arguments json.RawMessage) *Response {
	opts, resp := s.parseListOptions(id, arguments)
	if resp != nil {
		return resp
	}

	docs, pagination, err := s.cms.ListArticles(ctx, opts)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list articles: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"articles":   trimDocuments(docs),
		"pagination": pagination,
	})
}

func (s *Server) handleGetArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.GetArticle(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to get article: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleUpdateArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID int `json:"id"`
		client.UpdateArticleRequest
	}
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID == 0 {
		return s.errorResponse(id, InvalidParams, "id is required")
	}

	doc, err := s.cms.UpdateArticle(ctx, args.ID, args.UpdateArticleRequest)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to update article: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handlePublishArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.PublishArticle(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to publish article: %v", err))
	}
	return s.toolResult(id, doc)
}

// Tutorial tool handlers

func (s *Server) handleCreateTutorial(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args client.CreateTutorialRequest
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.Title == "" || args.Body == "" {
		return s.errorResponse(id, InvalidParams, "title and body are required")
	}

	doc, err := s.cms.CreateTutorial(ctx, args)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to create tutorial: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleListTutorials(ctx context.Context, id any, arguments json.RawMessage) *Response {
	opts, resp := s.parseListOptions(id, arguments)
	if resp != nil {
		return resp
	}

	docs, pagination, err := s.cms.ListTutorials(ctx, opts)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list tutorials: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"tutorials":  trimDocuments(docs),
		"pagination": pagination,
	})
}

func (s *Server) handleGetTutorial(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.GetTutorial(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to get tutorial: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleUpdateTutorial(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID int `json:"id"`
		client.UpdateTutorialRequest
	}
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID == 0 {
		return s.errorResponse(id, InvalidParams, "id is required")
	}

	doc, err := s.cms.UpdateTutorial(ctx, args.ID, args.UpdateTutorialRequest)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to update tutorial: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handlePublishTutorial(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.PublishTutorial(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to publish tutorial: %v", err))
	}
	return s.toolResult(id, doc)
}

// Event tool handlers

func (s *Server) handleCreateEvent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args client.CreateEventRequest
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.Title == "" || args.StartsAt == "" {
		return s.errorResponse(id, InvalidParams, "title and starts_at are required")
	}

	doc, err := s.cms.CreateEvent(ctx, args)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to create event: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleListEvents(ctx context.Context, id any, arguments json.RawMessage) *Response {
	opts, resp := s.parseListOptions(id, arguments)
	if resp != nil {
		return resp
	}

	docs, pagination, err := s.cms.ListEvents(ctx, opts)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list events: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"events":     trimDocuments(docs),
		"pagination": pagination,
	})
}

func (s *Server) handleGetEvent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.GetEvent(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to get event: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handleUpdateEvent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID int `json:"id"`
		client.UpdateEventRequest
	}
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID == 0 {
		return s.errorResponse(id, InvalidParams, "id is required")
	}

	doc, err := s.cms.UpdateEvent(ctx, args.ID, args.UpdateEventRequest)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to update event: %v", err))
	}
	return s.toolResult(id, doc)
}

func (s *Server) handlePublishEvent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	entryID, resp := s.parseEntryID(id, arguments)
	if resp != nil {
		return resp
	}

	doc, err := s.cms.PublishEvent(ctx, entryID)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to publish event: %v", err))
	}
	return s.toolResult(id, doc)
}

// Metadata tool handlers

func (s *Server) handleListAuthors(ctx context.Context, id any) *Response {
	authors, err := s.cms.ListAuthors(ctx)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list authors: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"authors": authors,
		"count":   len(authors),
	})
}

func (s *Server) handleListCategories(ctx context.Context, id any) *Response {
	categories, err := s.cms.ListCategories(ctx)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list categories: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

func (s *Server) handleListTags(ctx context.Context, id any) *Response {
	tags, err := s.cms.ListTags(ctx)
	if err != nil {
		return s.toolError(id, fmt.Sprintf("Failed to list tags: %v", err))
	}
	return s.toolResult(id, map[string]any{
		"tags":  tags,
		"count": len(tags),
	})
}

// Shared argument parsing

// parseListOptions parses the common list_* arguments. Empty or absent
// arguments mean no filter and default pagination.
func (s *Server) parseListOptions(id any, arguments json.RawMessage) (client.ListOptions, *Response) {
	var args struct {
		Status   string `json:"status"`
		Page     int    `json:"page"`
		PageSize int    `json:"page_size"`
	}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return client.ListOptions{}, s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Status != "" && args.Status != "draft" && args.Status != "published" {
		return client.ListOptions{}, s.errorResponse(id, InvalidParams, "status must be \"draft\" or \"published\"")
	}
	return client.ListOptions{
		Status:   args.Status,
		Page:     args.Page,
		PageSize: args.PageSize,
	}, nil
}

// parseEntryID parses the shared {"id": n} argument shape.
func (s *Server) parseEntryID(id any, arguments json.RawMessage) (int, *Response) {
	var args struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(arguments, &args); err != nil {
		return 0, s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID == 0 {
		return 0, s.errorResponse(id, InvalidParams, "id is required")
	}
	return args.ID, nil
}

// trimDocuments trims long rich-text attributes for list responses.
func trimDocuments(docs []client.Document) []client.Document {
	for i := range docs {
		content.TrimFields(docs[i].Attributes, content.DefaultTrimLimit)
	}
	return docs
}

// Result helpers

// toolResult wraps data as a successful tool result: a single text content
// block holding the pretty-printed JSON.
func (s *Server) toolResult(id any, data any) *Response {
	return s.resultResponse(id, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": formatResult(data),
			},
		},
		"isError": false,
	})
}

// toolError wraps a failure as an error-flagged tool result. The JSON-RPC
// envelope stays a success; the flag tells the caller the call failed.
func (s *Server) toolError(id any, message string) *Response {
	return s.resultResponse(id, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": message,
			},
		},
		"isError": true,
	})
}

func formatResult(data any) string {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(jsonData)
}
