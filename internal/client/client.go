package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"
)

// Prober is the endpoint surface one diagnostic cycle polls.
// *Client implements it; tests substitute their own.
type Prober interface {
	CheckHealth(ctx context.Context) EndpointResult
	FetchMetrics(ctx context.Context) EndpointResult
	ProbeZPages(ctx context.Context) ZPagesResult
	Host() string
	HealthURL() string
	MetricsURL() string
	ZPagesURL() string
}

// Config holds configuration for Client.
type Config struct {
	Host        string
	HealthPort  int
	MetricsPort int
	ZPagesPort  int
	Timeout     time.Duration
}

// Client polls the diagnostic HTTP endpoints of a collector over plain GETs.
type Client struct {
	http   *http.Client
	config Config
}

// New constructs a Client from the given config, filling in default ports
// and timeout for zero values. Returns an error if Host is empty.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("Host is required")
	}
	if cfg.HealthPort == 0 {
		cfg.HealthPort = DefaultHealthPort
	}
	if cfg.MetricsPort == 0 {
		cfg.MetricsPort = DefaultMetricsPort
	}
	if cfg.ZPagesPort == 0 {
		cfg.ZPagesPort = DefaultZPagesPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}, nil
}

// Host returns the configured collector host.
func (c *Client) Host() string {
	return c.config.Host
}

// Fetch performs a single GET against url and reports the outcome.
// One attempt only; the next cycle is the retry mechanism.
func (c *Client) Fetch(ctx context.Context, url string) EndpointResult {
	res := EndpointResult{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Error = err.Error()
		res.Reason = ReasonUnknown
		return res
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	res.Latency = time.Since(start)
	if err != nil {
		res.Error = err.Error()
		res.Reason = classifyFailure(err)
		return res
	}
	defer resp.Body.Close()

	const maxResponseBytes = 8 * 1024 * 1024 // well above any real metrics payload
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	res.Latency = time.Since(start)
	if err != nil {
		res.Error = fmt.Sprintf("read body: %v", err)
		res.Reason = classifyFailure(err)
		return res
	}

	res.Reachable = true
	res.StatusCode = resp.StatusCode
	res.Body = string(body)
	return res
}

// classifyFailure maps a transport error onto the coarse reasons the
// report distinguishes. Everything unrecognized stays ReasonUnknown.
func classifyFailure(err error) FailureReason {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return ReasonTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ReasonTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return ReasonConnectionRefused
	}
	return ReasonUnknown
}
