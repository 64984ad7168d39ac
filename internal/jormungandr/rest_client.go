// Package jormungandr talks to the REST API of a Jormungandr node.
package jormungandr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// RESTClient issues read-only requests against the node REST API.
type RESTClient struct {
	apiURL     string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	logger     *zap.Logger
}

// NewRESTClient builds a client for the API rooted at baseURL (e.g. http://localhost:5001/api).
// A non-positive rps disables request throttling.
func NewRESTClient(baseURL string, timeout time.Duration, rps int, logger *zap.Logger) (*RESTClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("rest api url is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps, ratelimit.WithoutSlack)
	}

	return &RESTClient{
		apiURL:     baseURL + "/v0",
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		logger:     logger,
	}, nil
}

// Tip returns the identifier of the current chain head.
func (c *RESTClient) Tip(ctx context.Context) (model.BlockID, error) {
	body, err := c.get(ctx, "tip", "tip")
	if err != nil {
		return "", err
	}

	tip := strings.ToLower(strings.TrimSpace(string(body)))
	if tip == "" {
		return "", &DecodeError{What: "tip", Err: errors.New("empty block id")}
	}
	return model.BlockID(tip), nil
}

// Block returns the raw binary encoding of a block.
func (c *RESTClient) Block(ctx context.Context, id model.BlockID) ([]byte, error) {
	return c.get(ctx, "block", "block/"+string(id))
}

// LeaderLogs returns every entry of the node's leadership log.
func (c *RESTClient) LeaderLogs(ctx context.Context) ([]model.ScheduledSlot, error) {
	body, err := c.get(ctx, "leaders_logs", "leaders/logs")
	if err != nil {
		return nil, err
	}
	return decodeLeaderLogs(body)
}

func (c *RESTClient) get(ctx context.Context, op, path string) ([]byte, error) {
	url := c.apiURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}

	c.limiter.Take()
	c.logger.Debug("node api request", zap.String("op", op), zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Op: op, URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Op: op, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UnavailableError{
			Op:         op,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	c.logger.Debug("node api response", zap.String("op", op), zap.Int("body_length", len(body)))
	return body, nil
}
