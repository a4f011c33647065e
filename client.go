// Package attiodex is a Go SDK and MCP server for the Attio CRM API. The SDK
// entry point is Client; the MCP server lives in cmd/attiodex.
package attiodex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	attiorepo "github.com/kailas-cloud/attiodex/internal/repository/attio"
	batchuc "github.com/kailas-cloud/attiodex/internal/usecase/batch"
	listuc "github.com/kailas-cloud/attiodex/internal/usecase/list"
	recorduc "github.com/kailas-cloud/attiodex/internal/usecase/record"
	searchuc "github.com/kailas-cloud/attiodex/internal/usecase/search"
)

// clientConfig collects the functional options.
type clientConfig struct {
	apiKey           string
	baseURL          string
	timeout          time.Duration
	httpClient       *http.Client
	scoringDisabled  bool
	fastPath         bool
	batchConcurrency int
	batchMaxItems    int
}

// Option configures a Client.
type Option func(*clientConfig)

// WithAPIKey sets the Attio API key. Required.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) { c.apiKey = key }
}

// WithBaseURL overrides the Attio API base URL.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) { c.baseURL = u }
}

// WithTimeout sets the per-request HTTP timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(h *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = h }
}

// WithoutScoring disables relevance scoring and the relaxed search fallback;
// results come back in provider order and strict misses stay empty.
func WithoutScoring() Option {
	return func(c *clientConfig) { c.scoringDisabled = true }
}

// WithFastPath enables the single-token probe before the full filter tree.
func WithFastPath() Option {
	return func(c *clientConfig) { c.fastPath = true }
}

// WithBatchConcurrency sets the batch search worker pool size (default 5).
func WithBatchConcurrency(n int) Option {
	return func(c *clientConfig) { c.batchConcurrency = n }
}

// WithMaxBatchSize caps how many queries one batch may carry (default 25).
func WithMaxBatchSize(n int) Option {
	return func(c *clientConfig) { c.batchMaxItems = n }
}

// Client is the attiodex SDK entry point. Safe for concurrent use.
type Client struct {
	repo      *attiorepo.Repo
	searchSvc *searchuc.Service
	recordSvc *recorduc.Service
	listSvc   *listuc.Service
	batchSvc  *batchuc.Service
}

// New creates a Client for an Attio workspace.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.apiKey == "" {
		return nil, errors.New("attiodex: API key required (use WithAPIKey)")
	}

	clientOpts := []attiorepo.Option{}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, attiorepo.WithBaseURL(cfg.baseURL))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, attiorepo.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		clientOpts = append(clientOpts, attiorepo.WithTimeout(cfg.timeout))
	}
	repo := attiorepo.New(attiorepo.NewClient(cfg.apiKey, clientOpts...))

	searchSvc := searchuc.New(repo, searchuc.Config{
		ScoringEnabled: !cfg.scoringDisabled,
		FastPath:       cfg.fastPath,
	})
	batchSvc, err := batchuc.New(searchSvc, cfg.batchConcurrency, cfg.batchMaxItems)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}

	return &Client{
		repo:      repo,
		searchSvc: searchSvc,
		recordSvc: recorduc.New(repo),
		listSvc:   listuc.New(repo),
		batchSvc:  batchSvc,
	}, nil
}

// Close releases the batch worker pool.
func (c *Client) Close() {
	if c.batchSvc != nil {
		c.batchSvc.Release()
	}
}

// Ping verifies API connectivity and credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.repo.Ping(ctx)
}

// Search starts a fluent search against one resource type.
func (c *Client) Search(resourceSlug string) *SearchBuilder {
	return &SearchBuilder{client: c, resource: resourceSlug}
}

// Records returns the record CRUD surface for one resource type.
func (c *Client) Records(resourceSlug string) *RecordService {
	return &RecordService{client: c, resource: resourceSlug}
}

// Lists returns the list membership surface for one list.
func (c *Client) Lists(listSlug string) *ListService {
	return &ListService{client: c, list: listSlug}
}

// ValidateCategories checks company category values locally, without an API
// call. See CategoryResult for the outcome shape.
func (c *Client) ValidateCategories(input any) CategoryResult {
	res := c.recordSvc.ValidateCategories(input)
	return CategoryResult{
		IsValid:             res.IsValid,
		ValidatedCategories: res.ValidatedCategories,
		AutoConverted:       res.AutoConverted,
		Suggestions:         res.Suggestions,
		Errors:              res.Errors,
		Warnings:            res.Warnings,
	}
}
