// Package client is a typed wrapper over the HTTP API for views and tools.
// Identity lives in an explicit Session that each wrapper is bound to.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNoSession      = errors.New("client: no active session")
	ErrUnexpectedBody = errors.New("client: response is not a page envelope")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

func (c *Client) do(ctx context.Context, method, path string, sess *Session, in, out interface{}) error {
	var token string
	if sess != nil {
		var ok bool
		if token, ok = sess.bearer(); !ok {
			return ErrNoSession
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// Page mirrors the list envelope returned by every listing endpoint.
type Page[T any] struct {
	Data  []T
	Total int64
	Page  int
	Limit int
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Total *int64          `json:"total"`
	Page  *int            `json:"page"`
	Limit *int            `json:"limit"`
}

func decodePage[T any](raw json.RawMessage) (Page[T], error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Page[T]{}, ErrUnexpectedBody
	}
	trimmed := bytes.TrimSpace(env.Data)
	if env.Total == nil || env.Page == nil || env.Limit == nil || len(trimmed) == 0 || trimmed[0] != '[' {
		return Page[T]{}, ErrUnexpectedBody
	}

	page := Page[T]{Total: *env.Total, Page: *env.Page, Limit: *env.Limit}
	if err := json.Unmarshal(trimmed, &page.Data); err != nil {
		return Page[T]{}, err
	}
	return page, nil
}

func getPage[T any](ctx context.Context, c *Client, sess *Session, path string, q PageQuery) (Page[T], error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path+q.encode(), sess, nil, &raw); err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](raw)
}
