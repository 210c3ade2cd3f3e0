package mcp

// getAllTools returns all available MCP tools grouped by content kind.
func getAllTools() []Tool {
	tools := []Tool{}
	tools = append(tools, getArticleTools()...)
	tools = append(tools, getTutorialTools()...)
	tools = append(tools, getEventTools()...)
	tools = append(tools, getTaxonomyTools()...)
	return tools
}

// listSchema is the shared input schema for the list_* tools.
func listSchema(kind string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type":        "string",
				"description": "Filter by publication state. Omit to list both drafts and published " + kind + ".",
				"enum":        []string{"draft", "published"},
			},
			"page": map[string]any{
				"type":        "integer",
				"description": "Page number (default: 1)",
			},
			"page_size": map[string]any{
				"type":        "integer",
				"description": "Entries per page (default: 25, max: 100)",
			},
		},
	}
}

// idSchema is the shared input schema for the get_* and publish_* tools.
func idSchema(kind string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "integer",
				"description": "ID of the " + kind,
			},
		},
		"required": []string{"id"},
	}
}

func getArticleTools() []Tool {
	return []Tool{
		{
			Name:        "create_article",
			Description: "Create a draft article. The URL slug and reading time are derived from the title and body.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Article title",
					},
					"body": map[string]any{
						"type":        "string",
						"description": "Article body in markdown",
					},
					"summary": map[string]any{
						"type":        "string",
						"description": "Short summary shown in listings",
					},
					"author_id": map[string]any{
						"type":        "integer",
						"description": "ID of the author (see list_authors)",
					},
					"category_id": map[string]any{
						"type":        "integer",
						"description": "ID of the category (see list_categories)",
					},
					"tag_ids": map[string]any{
						"type":        "array",
						"description": "IDs of tags to attach (see list_tags)",
						"items": map[string]any{
							"type": "integer",
						},
					},
				},
				"required": []string{"title", "body"},
			},
		},
		{
			Name:        "list_articles",
			Description: "List articles with optional status filter and pagination. Long body fields are trimmed; use get_article for full content.",
			InputSchema: listSchema("articles"),
		},
		{
			Name:        "get_article",
			Description: "Get one article by ID with full content, drafts included.",
			InputSchema: idSchema("article"),
		},
		{
			Name:        "update_article",
			Description: "Update fields of an existing article. A changed title re-derives the slug; a changed body re-derives the reading time.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "ID of the article to update",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"body": map[string]any{
						"type":        "string",
						"description": "New body in markdown",
					},
					"summary": map[string]any{
						"type":        "string",
						"description": "New summary",
					},
					"author_id": map[string]any{
						"type":        "integer",
						"description": "New author ID",
					},
					"category_id": map[string]any{
						"type":        "integer",
						"description": "New category ID",
					},
					"tag_ids": map[string]any{
						"type":        "array",
						"description": "Replacement tag IDs",
						"items": map[string]any{
							"type": "integer",
						},
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "publish_article",
			Description: "Publish a draft article by setting its publish timestamp to now.",
			InputSchema: idSchema("article"),
		},
	}
}

func getTutorialTools() []Tool {
	return []Tool{
		{
			Name:        "create_tutorial",
			Description: "Create a draft tutorial. The URL slug and reading time are derived from the title and body.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Tutorial title",
					},
					"body": map[string]any{
						"type":        "string",
						"description": "Tutorial body in markdown",
					},
					"difficulty": map[string]any{
						"type":        "string",
						"description": "Difficulty level",
						"enum":        []string{"beginner", "intermediate", "advanced"},
					},
					"author_id": map[string]any{
						"type":        "integer",
						"description": "ID of the author (see list_authors)",
					},
					"tag_ids": map[string]any{
						"type":        "array",
						"description": "IDs of tags to attach (see list_tags)",
						"items": map[string]any{
							"type": "integer",
						},
					},
				},
				"required": []string{"title", "body"},
			},
		},
		{
			Name:        "list_tutorials",
			Description: "List tutorials with optional status filter and pagination. Long body fields are trimmed; use get_tutorial for full content.",
			InputSchema: listSchema("tutorials"),
		},
		{
			Name:        "get_tutorial",
			Description: "Get one tutorial by ID with full content, drafts included.",
			InputSchema: idSchema("tutorial"),
		},
		{
			Name:        "update_tutorial",
			Description: "Update fields of an existing tutorial. A changed title re-derives the slug; a changed body re-derives the reading time.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "ID of the tutorial to update",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"body": map[string]any{
						"type":        "string",
						"description": "New body in markdown",
					},
					"difficulty": map[string]any{
						"type":        "string",
						"description": "New difficulty level",
						"enum":        []string{"beginner", "intermediate", "advanced"},
					},
					"author_id": map[string]any{
						"type":        "integer",
						"description": "New author ID",
					},
					"tag_ids": map[string]any{
						"type":        "array",
						"description": "Replacement tag IDs",
						"items": map[string]any{
							"type": "integer",
						},
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "publish_tutorial",
			Description: "Publish a draft tutorial by setting its publish timestamp to now.",
			InputSchema: idSchema("tutorial"),
		},
	}
}

func getEventTools() []Tool {
	return []Tool{
		{
			Name:        "create_event",
			Description: "Create a draft event. The URL slug is derived from the title.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Event title",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "Event description in markdown",
					},
					"starts_at": map[string]any{
						"type":        "string",
						"description": "Start time, RFC 3339 (e.g. 2026-09-01T18:00:00Z)",
					},
					"ends_at": map[string]any{
						"type":        "string",
						"description": "End time, RFC 3339",
					},
					"location": map[string]any{
						"type":        "string",
						"description": "Venue or online location",
					},
					"category_id": map[string]any{
						"type":        "integer",
						"description": "ID of the category (see list_categories)",
					},
				},
				"required": []string{"title", "starts_at"},
			},
		},
		{
			Name:        "list_events",
			Description: "List events with optional status filter and pagination. Long description fields are trimmed; use get_event for full content.",
			InputSchema: listSchema("events"),
		},
		{
			Name:        "get_event",
			Description: "Get one event by ID with full content, drafts included.",
			InputSchema: idSchema("event"),
		},
		{
			Name:        "update_event",
			Description: "Update fields of an existing event. A changed title re-derives the slug.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "ID of the event to update",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "New description in markdown",
					},
					"starts_at": map[string]any{
						"type":        "string",
						"description": "New start time, RFC 3339",
					},
					"ends_at": map[string]any{
						"type":        "string",
						"description": "New end time, RFC 3339",
					},
					"location": map[string]any{
						"type":        "string",
						"description": "New location",
					},
					"category_id": map[string]any{
						"type":        "integer",
						"description": "New category ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "publish_event",
			Description: "Publish a draft event by setting its publish timestamp to now.",
			InputSchema: idSchema("event"),
		},
	}
}

func getTaxonomyTools() []Tool {
	return []Tool{
		{
			Name:        "list_authors",
			Description: "List all authors with their IDs for use in create/update calls.",
			InputSchema: map[string]any{
				"type": "object",
			},
		},
		{
			Name:        "list_categories",
			Description: "List all categories with their IDs for use in create/update calls.",
			InputSchema: map[string]any{
				"type": "object",
			},
		},
		{
			Name:        "list_tags",
			Description: "List all tags with their IDs for use in create/update calls.",
			InputSchema: map[string]any{
				"type": "object",
			},
		},
	}
}
