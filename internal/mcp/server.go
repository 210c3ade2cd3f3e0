// Package mcp implements the MCP protocol surface: JSON-RPC dispatch, the
// tool catalog, and the per-tool handlers that forward calls to the
// Draftstack backend.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/draftstack/mcp-draftstack/internal/client"
	"github.com/draftstack/mcp-draftstack/internal/logger"
)

const (
	serverName      = "draftstack-mcp"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// Server handles MCP protocol requests.
type Server struct {
	cms *client.CMSClient
	log logger.Logger
}

// NewServer creates a new MCP server backed by the given CMS client.
func NewServer(cms *client.CMSClient, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{cms: cms, log: log}
}

// HandleRequest processes an MCP request and returns a response.
// Returns nil for notifications (requests without ID).
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	id := req.ID

	switch req.Method {
	case "initialize":
		return s.handleInitialize(id)
	case "tools/list":
		return s.handleToolsList(id)
	case "tools/call":
		return s.handleToolsCall(ctx, req, id)
	case "prompts/list":
		return s.handlePromptsList(id)
	case "prompts/get":
		return s.handlePromptsGet(req, id)
	case "resources/list":
		return s.handleResourcesList(id)
	case "resources/read":
		return s.handleResourcesRead(req, id)
	case "ping":
		return &Response{
			JSONRPC: "2.0",
			ID:      id,
			Result:  json.RawMessage(`"pong"`),
		}
	}

	// Notifications don't require responses, even for unknown methods.
	if id == nil {
		return nil
	}

	return s.errorResponse(id, MethodNotFound, "Method not found: "+req.Method)
}

func (s *Server) handleInitialize(id any) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
	return s.resultResponse(id, result)
}

func (s *Server) handleToolsList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"tools": getAllTools(),
	})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request, id any) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters")
	}

	s.log.Debug("tool call", logger.String("tool", params.Name))
	return s.routeToolCall(ctx, id, params.Name, params.Arguments)
}

func (s *Server) handlePromptsList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"prompts": getAllPrompts(),
	})
}

func (s *Server) handlePromptsGet(req *Request, id any) *Response {
	name, arguments, errMsg := parsePromptsGetParams(req.Params)
	if errMsg != "" {
		return s.errorResponse(id, InvalidParams, errMsg)
	}

	messages, err := getPromptByName(name, arguments)
	if err != nil {
		return s.errorResponse(id, InvalidParams, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"messages": messages,
	})
}

func (s *Server) handleResourcesList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"resources": getAllResources(),
	})
}

func (s *Server) handleResourcesRead(req *Request, id any) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters")
	}
	if params.URI == "" {
		return s.errorResponse(id, InvalidParams, "uri is required")
	}

	contents, err := readResource(params.URI)
	if err != nil {
		return s.errorResponse(id, ResourceNotFound, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"contents": contents,
	})
}

// resultResponse marshals result into a JSON-RPC success response.
func (s *Server) resultResponse(id any, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}
