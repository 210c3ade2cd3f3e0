package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// getAllPrompts returns the list of prompt definitions.
func getAllPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "draft_article",
			Description: "Draft a new article on a topic and create it in the CMS.",
			Arguments: []PromptArgument{
				{Name: "topic", Description: "Topic to write about", Required: true},
				{Name: "category", Description: "Category name to file the article under", Required: false},
			},
		},
		{
			Name:        "publish_review",
			Description: "Review the drafts of a content kind and decide which to publish.",
			Arguments: []PromptArgument{
				{Name: "kind", Description: "Content kind: articles, tutorials, or events", Required: true},
			},
		},
		{
			Name:        "content_inventory",
			Description: "Summarize what content exists across all three kinds.",
		},
	}
}

// getPromptByName returns the prompt messages for the given name with
// arguments substituted. A missing required argument is an invalid-params
// condition for the caller.
func getPromptByName(name string, arguments map[string]any) ([]PromptMessage, error) {
	prompts := getAllPrompts()
	var def *Prompt
	for i := range prompts {
		if prompts[i].Name == name {
			def = &prompts[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}

	var missing []string
	for _, arg := range def.Arguments {
		if !arg.Required {
			continue
		}
		v, ok := arguments[arg.Name]
		if !ok || v == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	return buildPromptMessages(def.Name, arguments), nil
}

func buildPromptMessages(name string, args map[string]any) []PromptMessage {
	var text string
	switch name {
	case "draft_article":
		topic, _ := args["topic"].(string)
		text = fmt.Sprintf(
			"Write an article about %q. Use list_categories and list_authors to pick valid IDs, "+
				"then create_article with the draft. Leave it unpublished for review.",
			topic,
		)
		if category, _ := args["category"].(string); category != "" {
			text += fmt.Sprintf(" File it under the %q category if it exists.", category)
		}
	case "publish_review":
		kind, _ := args["kind"].(string)
		text = fmt.Sprintf(
			"Use list_%s with status \"draft\" to see pending drafts, inspect the promising ones "+
				"with the get tool, and publish the ones that are ready.",
			kind,
		)
	case "content_inventory":
		text = "Use list_articles, list_tutorials, and list_events (both statuses) to build a short " +
			"inventory: counts per kind, drafts vs published, and anything stale."
	}

	return []PromptMessage{{
		Role:    "user",
		Content: []PromptContent{{Type: "text", Text: text}},
	}}
}

type promptsGetParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// parsePromptsGetParams parses params for prompts/get. Returns name,
// arguments, and an error message if invalid.
func parsePromptsGetParams(params json.RawMessage) (name string, arguments map[string]any, errMsg string) {
	var p promptsGetParams
	if unmarshalErr := json.Unmarshal(params, &p); unmarshalErr != nil {
		return "", nil, "Invalid parameters: " + unmarshalErr.Error()
	}
	if p.Name == "" {
		return "", nil, "name is required"
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	return p.Name, p.Arguments, ""
}
