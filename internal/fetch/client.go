// Package fetch downloads the executive-order corpus from the Federal
// Register API. Pagination, rate limiting, and caching all live here; the
// attribution engine only ever sees the fully materialized document list.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ppiankov/eopulse/internal/cache"
	"github.com/ppiankov/eopulse/internal/model"
	"github.com/ppiankov/eopulse/internal/worker"
)

// page is one page of the documents.json response.
type page struct {
	Count      int              `json:"count"`
	TotalPages int              `json:"total_pages"`
	Results    []model.Document `json:"results"`
}

// Client fetches the corpus.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	maxBytes   int64
	limiter    *worker.Limiter
	pool       *worker.Pool
	store      cache.Cache // nil disables caching
}

// NewClient creates a client from the API configuration. Pass a nil store
// to force fresh fetches.
func NewClient(cfg model.APIConfig, store cache.Cache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		limiter:    worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		pool:       worker.NewPool(cfg.PageWorkers),
		store:      store,
	}
}

// FetchAll retrieves every page of the corpus and concatenates the results
// in page order. The first page reveals the page count; the rest download
// through the worker pool.
func (c *Client) FetchAll(ctx context.Context) ([]model.Document, error) {
	first, err := c.fetchPage(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("fetch page 1: %w", err)
	}

	pages := make([][]model.Document, first.TotalPages)
	if len(pages) == 0 {
		pages = make([][]model.Document, 1)
	}
	pages[0] = first.Results

	if first.TotalPages > 1 {
		err := c.pool.Run(ctx, first.TotalPages-1, func(ctx context.Context, i int) error {
			n := i + 2
			p, err := c.fetchPage(ctx, n)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", n, err)
			}
			pages[n-1] = p.Results
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	var docs []model.Document
	for _, p := range pages {
		docs = append(docs, p...)
	}

	log.WithFields(log.Fields{
		"pages":     first.TotalPages,
		"documents": len(docs),
		"expected":  first.Count,
	}).Debug("corpus fetched")

	return docs, nil
}

// fetchPage returns one decoded page, from cache when possible.
func (c *Client) fetchPage(ctx context.Context, n int) (*page, error) {
	pageURL, err := c.pageURL(n)
	if err != nil {
		return nil, err
	}

	key := cache.Key(pageURL)
	if c.store != nil {
		if body, found := c.store.Get(key); found {
			log.WithField("page", n).Debug("cache hit")
			return decodePage(body)
		}
	}

	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Set(key, body, 0); err != nil {
			log.WithError(err).Warn("cache write failed")
		}
	}

	return decodePage(body)
}

// get performs one rate-limited HTTP request.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// pageURL adds the page number to the configured endpoint query.
func (c *Client) pageURL(n int) (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := parsed.Query()
	q.Set("page", strconv.Itoa(n))
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func decodePage(body []byte) (*page, error) {
	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &p, nil
}
