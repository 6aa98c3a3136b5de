package itemapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Client defines the operations the batch queue needs from the item store.
type Client interface {
	// LookupByIDs returns the stored records for the given federated ids,
	// keyed by federated id. Ids unknown to the store are absent.
	LookupByIDs(ctx context.Context, ids []string) (map[string]catalog.StoredItem, error)
	// CreateBatch creates new records.
	CreateBatch(ctx context.Context, items []catalog.Item) error
	// UpdateBatch updates records identified by their store-assigned id.
	UpdateBatch(ctx context.Context, items []catalog.StoredItem) error
}

// Route paths of the item API.
const (
	PathLookup = "/items/byFederatedIds"
	PathBatch  = "/items/batch"
)

// ItemsResponse is the body of a lookup response.
type ItemsResponse struct {
	Items []catalog.StoredItem `json:"items"`
}

// CreateRequest is the body of a bulk create request.
type CreateRequest struct {
	Items []catalog.Item `json:"items"`
}

// UpdateRequest is the body of a bulk update request.
type UpdateRequest struct {
	Items []catalog.StoredItem `json:"items"`
}

// HTTPClient implements Client over the JSON item API.
type HTTPClient struct {
	baseURL   string
	batchSize int
	http      *http.Client
	limiter   *Limiter
	logger    *zap.Logger
}

// NewHTTPClient creates an item API client based on the configuration.
func NewHTTPClient(cfg Config, logger *zap.Logger) (*HTTPClient, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	batchSize := cfg.MaxBatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 100
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          maxConcurrent,
		MaxIdleConnsPerHost:   maxConcurrent,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPClient{
		baseURL:   strings.TrimSuffix(u.String(), "/"),
		batchSize: batchSize,
		http:      &http.Client{Transport: transport, Timeout: timeoutDuration},
		limiter:   NewLimiter(maxConcurrent, cfg.RequestsPerSecond),
		logger:    logger,
	}, nil
}

// LookupByIDs fetches stored records by federated id, one request per chunk.
// Ids travel comma joined in one query parameter, so an id must not contain a
// comma.
func (c *HTTPClient) LookupByIDs(ctx context.Context, ids []string) (map[string]catalog.StoredItem, error) {
	result := make(map[string]catalog.StoredItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	err := forEachChunk(ids, c.batchSize, func(chunk []string) error {
		query := url.Values{}
		query.Set("federatedIds", strings.Join(chunk, ","))

		var resp ItemsResponse
		if err := c.do(ctx, "lookup", http.MethodGet, PathLookup, query, nil, &resp); err != nil {
			return err
		}

		mu.Lock()
		for _, item := range resp.Items {
			result[item.FederatedID] = item
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to lookup items: %w", err)
	}

	return result, nil
}

// CreateBatch posts items in chunks of at most MaxBatchSize.
func (c *HTTPClient) CreateBatch(ctx context.Context, items []catalog.Item) error {
	err := forEachChunk(items, c.batchSize, func(chunk []catalog.Item) error {
		return c.do(ctx, "create", http.MethodPost, PathBatch, nil, CreateRequest{Items: chunk}, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to create items: %w", err)
	}
	return nil
}

// UpdateBatch puts items in chunks of at most MaxBatchSize.
func (c *HTTPClient) UpdateBatch(ctx context.Context, items []catalog.StoredItem) error {
	err := forEachChunk(items, c.batchSize, func(chunk []catalog.StoredItem) error {
		return c.do(ctx, "update", http.MethodPut, PathBatch, nil, UpdateRequest{Items: chunk}, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to update items: %w", err)
	}
	return nil
}

// Limiter returns the admission limiter shared by all calls of this client.
func (c *HTTPClient) Limiter() *Limiter {
	return c.limiter
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	return c.limiter.Do(ctx, func(ctx context.Context) error {
		err := c.send(ctx, method, path, query, body, out)
		outcome := "success"
		if err != nil {
			outcome = "error"
			c.logger.Debug("Item API request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err),
			)
		}
		metrics.ItemAPIRequestsTotal.WithLabelValues(op, outcome).Inc()
		return err
	})
}

func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// forEachChunk issues fn for every chunk of items. All chunks are issued even
// when one fails; the first error is returned.
func forEachChunk[T any](items []T, size int, fn func(chunk []T) error) error {
	var g errgroup.Group
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]
		g.Go(func() error {
			return fn(chunk)
		})
	}
	return g.Wait()
}
