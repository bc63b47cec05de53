// Package client is the typed REST collaborator the admin console talks to.
// Response envelopes are normalized here, once; callers only ever see the
// canonical models types.
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
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// ErrUnauthorized matches any *APIError with status 401.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is an application-level failure: an envelope with success:false
// or an HTTP status of 400 or more. Message is meant for the user.
type APIError struct {
	Status  int
	Message string
	// Fields holds per-field validation messages, keyed by JSON name.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// Client talks to the admin API under baseURL, e.g. http://localhost:5000/api.
type Client struct {
	http *http.Client
	base string
	log  *zap.Logger

	mu    sync.RWMutex
	token string

	Products   *ProductsAPI
	Categories *CategoriesAPI
	Brands     *BrandsAPI
	Dashboard  *DashboardAPI
	Auth       *AuthAPI
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: 15 * time.Second},
		base: strings.TrimRight(baseURL, "/"),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductsAPI{resource[models.Product]{c: c, path: "/admin/products", one: "product", many: []string{"products"}, decode: decodeProduct}}
	c.Categories = &CategoriesAPI{resource[models.Category]{c: c, path: "/admin/categories", one: "category", many: []string{"categories"}, decode: decodeCategory}}
	c.Brands = &BrandsAPI{resource[models.Brand]{c: c, path: "/admin/brands", one: "brand", many: []string{"brands"}, decode: decodeBrand}}
	c.Dashboard = &DashboardAPI{c: c}
	c.Auth = &AuthAPI{c: c}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// do sends in as JSON and decodes the reply envelope. Transport failures come
// back wrapped; failed envelopes come back as *APIError together with the
// envelope.
func (c *Client) do(ctx context.Context, method, path string, in any) (envelope, error) {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return envelope{}, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("[client.request]",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	env, err := parseEnvelope(resp.StatusCode, payload)
	if err != nil {
		if resp.StatusCode >= 400 {
			return env, &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return env, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	if !env.ok() {
		return env, env.apiError()
	}
	return env, nil
}
