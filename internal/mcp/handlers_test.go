//nolint:testpackage // handlers are unexported
package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftstack/mcp-draftstack/internal/client"
)

// newBackedServer wires a Server to a fake CMS handler.
func newBackedServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewServer(client.New(srv.URL, "test-token", "", ""), nil)
}

func TestHandleCreateArticle_Success(t *testing.T) {
	s := newBackedServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/articles" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id": 12,
				"attributes": map[string]any{
					"title": "My Post",
					"slug":  "my-post",
				},
			},
		})
	})

	args := json.RawMessage(`{"title":"My Post","body":"hello world"}`)
	resp := s.routeToolCall(context.Background(), "1", "create_article", args)
	isError, text := decodeToolResult(t, resp)
	if isError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.Contains(text, `"my-post"`) {
		t.Errorf("expected created document in result, got %q", text)
	}
}

func TestHandleCreateArticle_MissingFields_InvalidParams(t *testing.T) {
	s := newTestServer()
	args := json.RawMessage(`{"title":"No Body"}`)
	resp := s.routeToolCall(context.Background(), "1", "create_article", args)
	if resp.Error == nil || resp.Error.Code != InvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", resp)
	}
	if !strings.Contains(resp.Error.Message, "required") {
		t.Errorf("expected message naming required fields, got %q", resp.Error.Message)
	}
}

func TestHandleCreateEvent_MissingStartsAt_InvalidParams(t *testing.T) {
	s := newTestServer()
	args := json.RawMessage(`{"title":"Meetup"}`)
	resp := s.routeToolCall(context.Background(), "1", "create_event", args)
	if resp.Error == nil || resp.Error.Code != InvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", resp)
	}
}

func TestHandleGetArticle_BackendFailure_FlaggedErrorResult(t *testing.T) {
	s := newBackedServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Not Found"},
		})
	})

	resp := s.routeToolCall(context.Background(), "1", "get_article", json.RawMessage(`{"id":99}`))
	isError, text := decodeToolResult(t, resp)
	if !isError {
		t.Fatal("expected isError true for backend failure")
	}
	if !strings.Contains(text, "Not Found") {
		t.Errorf("expected backend message in result, got %q", text)
	}
}

func TestHandleGetArticle_MissingID_InvalidParams(t *testing.T) {
	s := newTestServer()
	resp := s.routeToolCall(context.Background(), "1", "get_article", json.RawMessage(`{}`))
	if resp.Error == nil || resp.Error.Code != InvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", resp)
	}
}

func TestHandleListArticles_TrimsLongBodies(t *testing.T) {
	longBody := strings.Repeat("x", 2000)
	s := newBackedServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": 1, "attributes": map[string]any{"title": "Long", "body": longBody}},
			},
			"meta": map[string]any{"pagination": map[string]any{"page": 1, "total": 1}},
		})
	})

	resp := s.routeToolCall(context.Background(), "1", "list_articles", json.RawMessage(`{}`))
	isError, text := decodeToolResult(t, resp)
	if isError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if strings.Contains(text, longBody) {
		t.Error("expected long body to be trimmed in list result")
	}
	if !strings.Contains(text, "…") {
		t.Error("expected ellipsis marker in trimmed body")
	}
}

func TestHandleListArticles_InvalidStatus_InvalidParams(t *testing.T) {
	s := newTestServer()
	resp := s.routeToolCall(context.Background(), "1", "list_articles", json.RawMessage(`{"status":"pending"}`))
	if resp.Error == nil || resp.Error.Code != InvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", resp)
	}
}

func TestHandleUpdateTutorial_SendsPartialUpdate(t *testing.T) {
	var sentAttributes map[string]any
	s := newBackedServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tutorials/3" || r.Method != http.MethodPut {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		sentAttributes = body.Data
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": 3, "attributes": map[string]any{}},
		})
	})

	args := json.RawMessage(`{"id":3,"difficulty":"advanced"}`)
	resp := s.routeToolCall(context.Background(), "1", "update_tutorial", args)
	if isError, text := decodeToolResult(t, resp); isError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if sentAttributes["difficulty"] != "advanced" {
		t.Errorf("expected difficulty sent, got %v", sentAttributes)
	}
	if _, ok := sentAttributes["slug"]; ok {
		t.Error("slug must not be re-derived when title is unchanged")
	}
}

func TestHandlePublishArticle_AuthFailure_FlaggedErrorResult(t *testing.T) {
	// No API token and no admin credentials: the call fails before any
	// backend round-trip and surfaces as an error-flagged result.
	s := NewServer(client.New("http://localhost:1", "", "", ""), nil)
	resp := s.routeToolCall(context.Background(), "1", "publish_article", json.RawMessage(`{"id":5}`))
	isError, text := decodeToolResult(t, resp)
	if !isError {
		t.Fatal("expected isError true for auth failure")
	}
	if !strings.Contains(text, "authenticate") {
		t.Errorf("expected auth failure message, got %q", text)
	}
}

func TestHandleListAuthors_Success(t *testing.T) {
	s := newBackedServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/authors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": 1, "attributes": map[string]any{"name": "Ada"}},
				{"id": 2, "attributes": map[string]any{"name": "Linus"}},
			},
		})
	})

	resp := s.routeToolCall(context.Background(), "1", "list_authors", nil)
	isError, text := decodeToolResult(t, resp)
	if isError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.Contains(text, `"count": 2`) {
		t.Errorf("expected count 2 in result, got %q", text)
	}
}
