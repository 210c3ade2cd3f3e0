// Package client implements the HTTP client for the Draftstack backend. Each
// content kind gets thin typed wrappers over a shared collection API; the
// backend owns all storage and workflow, this side only marshals requests
// and reshapes responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/draftstack/mcp-draftstack/internal/logger"
)

const defaultHTTPTimeout = 30 * time.Second

// CMSClient is a client for the Draftstack content API.
type CMSClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenSource
	log        logger.Logger
}

// Option configures a CMSClient.
type Option func(*CMSClient)

// WithTimeout overrides the default HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *CMSClient) {
		c.httpClient.Timeout = d
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(c *CMSClient) {
		c.log = log
	}
}

// New creates a CMS client. apiToken wins over email/password when both are
// configured.
func New(baseURL, apiToken, adminEmail, adminPassword string, opts ...Option) *CMSClient {
	c := &CMSClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		log:        logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tokens = NewTokenSource(baseURL, apiToken, adminEmail, adminPassword, c.httpClient)
	return c
}

// Document is a single entry as the backend returns it: an opaque numeric
// identifier plus the attribute map for the content kind.
type Document struct {
	ID         int            `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ListOptions narrows a collection listing.
type ListOptions struct {
	// Status filters by publication state: "draft", "published", or "" for all.
	Status   string
	Page     int
	PageSize int
}

// doJSON performs one authenticated JSON request against the backend and
// returns the raw response body when the status code is in successCodes.
func (c *CMSClient) doJSON(ctx context.Context, method, path string, query url.Values, requestBody any, successCodes ...int) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		body, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session token may have been revoked server-side; next call logs in again.
		c.tokens.Invalidate()
	}

	for _, code := range successCodes {
		if resp.StatusCode == code {
			return respBody, nil
		}
	}

	c.log.Warn("cms request failed",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
	)

	if msg := decodeErrorMessage(respBody); msg != "" {
		return nil, fmt.Errorf("draftstack error: %s", msg)
	}
	return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
}

// decodeErrorMessage extracts the backend's error envelope message, or ""
// when the body is not a recognizable error payload.
func decodeErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return ""
}

// createEntry creates an entry in the named collection.
func (c *CMSClient) createEntry(ctx context.Context, plural string, attributes map[string]any) (*Document, error) {
	body, err := c.doJSON(ctx, http.MethodPost, "/api/"+plural, nil,
		map[string]any{"data": attributes},
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return decodeDocument(body)
}

// listEntries lists entries of the named collection.
func (c *CMSClient) listEntries(ctx context.Context, plural string, opts ListOptions) ([]Document, *Pagination, error) {
	query := url.Values{}
	switch opts.Status {
	case "draft":
		query.Set("publicationState", "preview")
		query.Set("filters[publishedAt][$null]", "true")
	case "published", "":
		// Backend default only returns published entries; "" lists everything.
		if opts.Status == "" {
			query.Set("publicationState", "preview")
		}
	default:
		return nil, nil, fmt.Errorf("invalid status filter: %q", opts.Status)
	}
	if opts.Page > 0 {
		query.Set("pagination[page]", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		query.Set("pagination[pageSize]", strconv.Itoa(opts.PageSize))
	}

	body, err := c.doJSON(ctx, http.MethodGet, "/api/"+plural, query, nil, http.StatusOK)
	if err != nil {
		return nil, nil, err
	}

	var response struct {
		Data []Document `json:"data"`
		Meta struct {
			Pagination Pagination `json:"pagination"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return response.Data, &response.Meta.Pagination, nil
}

// getEntry fetches one entry by ID.
func (c *CMSClient) getEntry(ctx context.Context, plural string, id int) (*Document, error) {
	query := url.Values{}
	query.Set("publicationState", "preview")
	body, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/%s/%d", plural, id), query, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeDocument(body)
}

// updateEntry updates an entry by ID.
func (c *CMSClient) updateEntry(ctx context.Context, plural string, id int, attributes map[string]any) (*Document, error) {
	body, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/%s/%d", plural, id), nil,
		map[string]any{"data": attributes},
		http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeDocument(body)
}

// publishEntry marks an entry published by setting its publish timestamp.
// A non-null publishedAt is the backend's only notion of "published".
func (c *CMSClient) publishEntry(ctx context.Context, plural string, id int) (*Document, error) {
	return c.updateEntry(ctx, plural, id, map[string]any{
		"publishedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func decodeDocument(body []byte) (*Document, error) {
	var response struct {
		Data Document `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &response.Data, nil
}
