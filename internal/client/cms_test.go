package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/draftstack/mcp-draftstack/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCMS captures the last request and plays back a canned response.
type fakeCMS struct {
	t *testing.T

	lastMethod string
	lastPath   string
	lastQuery  map[string][]string
	lastBody   map[string]any

	status   int
	response any
}

func (f *fakeCMS) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.lastMethod = r.Method
		f.lastPath = r.URL.Path
		f.lastQuery = r.URL.Query()

		require.Equal(f.t, "Bearer test-token", r.Header.Get("Authorization"))

		f.lastBody = nil
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				f.lastBody = body
			}
		}

		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(f.response)
	}
}

func (f *fakeCMS) sentAttributes() map[string]any {
	data, ok := f.lastBody["data"].(map[string]any)
	require.True(f.t, ok, "request body missing data envelope")
	return data
}

func newTestClient(t *testing.T, fake *fakeCMS) (*client.CMSClient, func()) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	return client.New(srv.URL, "test-token", "", ""), srv.Close
}

func documentResponse(id int, attributes map[string]any) map[string]any {
	return map[string]any{
		"data": map[string]any{"id": id, "attributes": attributes},
	}
}

func TestCreateArticle_DerivesSlugAndReadingTime(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, status: http.StatusCreated, response: documentResponse(7, map[string]any{"title": "Hello World"})}
	cms, done := newTestClient(t, fake)
	defer done()

	doc, err := cms.CreateArticle(context.Background(), client.CreateArticleRequest{
		Title:      "Hello, World!",
		Body:       "some short body",
		AuthorID:   3,
		CategoryID: 9,
		TagIDs:     []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, doc.ID)

	require.Equal(t, http.MethodPost, fake.lastMethod)
	require.Equal(t, "/api/articles", fake.lastPath)

	attrs := fake.sentAttributes()
	assert.Equal(t, "Hello, World!", attrs["title"])
	assert.Equal(t, "hello-world", attrs["slug"])
	assert.Equal(t, float64(1), attrs["readingTime"])
	assert.Equal(t, float64(3), attrs["author"])
	assert.Equal(t, float64(9), attrs["category"])
	assert.Equal(t, []any{float64(1), float64(2)}, attrs["tags"])
}

func TestUpdateArticle_OnlyChangedFieldsSent(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, response: documentResponse(7, nil)}
	cms, done := newTestClient(t, fake)
	defer done()

	_, err := cms.UpdateArticle(context.Background(), 7, client.UpdateArticleRequest{
		Title: "New Title",
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, fake.lastMethod)
	require.Equal(t, "/api/articles/7", fake.lastPath)

	attrs := fake.sentAttributes()
	assert.Equal(t, "New Title", attrs["title"])
	assert.Equal(t, "new-title", attrs["slug"])
	assert.NotContains(t, attrs, "body")
	assert.NotContains(t, attrs, "readingTime")
}

func TestListArticles_DraftFilterAndPagination(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, response: map[string]any{
		"data": []map[string]any{{"id": 1, "attributes": map[string]any{"title": "Draft"}}},
		"meta": map[string]any{"pagination": map[string]any{"page": 2, "pageSize": 10, "pageCount": 4, "total": 31}},
	}}
	cms, done := newTestClient(t, fake)
	defer done()

	docs, pagination, err := cms.ListArticles(context.Background(), client.ListOptions{
		Status:   "draft",
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 31, pagination.Total)

	assert.Equal(t, "preview", fake.lastQuery["publicationState"][0])
	assert.Equal(t, "true", fake.lastQuery["filters[publishedAt][$null]"][0])
	assert.Equal(t, "2", fake.lastQuery["pagination[page]"][0])
	assert.Equal(t, "10", fake.lastQuery["pagination[pageSize]"][0])
}

func TestListArticles_InvalidStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t}
	cms, done := newTestClient(t, fake)
	defer done()

	_, _, err := cms.ListArticles(context.Background(), client.ListOptions{Status: "pending"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status filter")
}

func TestPublishEvent_SetsPublishedAt(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, response: documentResponse(4, map[string]any{"publishedAt": "2026-08-30T00:00:00Z"})}
	cms, done := newTestClient(t, fake)
	defer done()

	_, err := cms.PublishEvent(context.Background(), 4)
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, fake.lastMethod)
	require.Equal(t, "/api/events/4", fake.lastPath)

	attrs := fake.sentAttributes()
	assert.NotEmpty(t, attrs["publishedAt"])
}

func TestGetTutorial_BackendErrorEnvelope(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, status: http.StatusNotFound, response: map[string]any{
		"error": map[string]any{"status": 404, "name": "NotFoundError", "message": "Not Found"},
	}}
	cms, done := newTestClient(t, fake)
	defer done()

	_, err := cms.GetTutorial(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draftstack error: Not Found")
}

func TestListTags_UnwrapsCollection(t *testing.T) {
	t.Parallel()

	fake := &fakeCMS{t: t, response: map[string]any{
		"data": []map[string]any{
			{"id": 1, "attributes": map[string]any{"name": "go", "slug": "go"}},
			{"id": 2, "attributes": map[string]any{"name": "testing", "slug": "testing"}},
		},
	}}
	cms, done := newTestClient(t, fake)
	defer done()

	tags, err := cms.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Attributes["name"])
	assert.Equal(t, "/api/tags", fake.lastPath)
}
