// Package api holds the clients for the backend collaborators: the
// chat assistant, user registration, contact submission, and the
// catalog admin endpoint. Each call is a single attempt; retry policy
// is left to the user action that triggered it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avickers/phonescout/internal/domain"
)

// Assistant is the chat collaborator.
type Assistant interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Registration creates users and yields their server-assigned IDs.
type Registration interface {
	CreateUser(ctx context.Context, req UserCreate) (*domain.User, error)
}

// ContactSubmitter delivers a completed contact capture.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, req ContactSubmission) (*ContactAck, error)
}

// Catalog manages the product catalog (admin use).
type Catalog interface {
	AddCellphone(ctx context.Context, req CellPhoneCreate) (*domain.CellPhone, error)
}

// HTTPClient talks JSON over HTTP to the backend. It implements all
// four collaborator interfaces against a single base URL.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Chat sends a user message and returns the assistant's reply.
func (c *HTTPClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser registers a user and returns it with the assigned ID.
func (c *HTTPClient) CreateUser(ctx context.Context, req UserCreate) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SubmitContact delivers contact details for a selected phone.
func (c *HTTPClient) SubmitContact(ctx context.Context, req ContactSubmission) (*ContactAck, error) {
	var ack ContactAck
	if err := c.post(ctx, "/contact-info", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// AddCellphone adds a phone to the catalog.
func (c *HTTPClient) AddCellphone(ctx context.Context, req CellPhoneCreate) (*domain.CellPhone, error) {
	var phone domain.CellPhone
	if err := c.post(ctx, "/cellphones", req, &phone); err != nil {
		return nil, err
	}
	return &phone, nil
}

// post marshals in, POSTs it to path, and unmarshals the response
// into out. Non-2xx statuses become errors carrying the body.
func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
