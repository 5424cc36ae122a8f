package client

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Well-known defaults for a collector running on the local machine.
const (
	DefaultHost        = "localhost"
	DefaultHealthPort  = 13133
	DefaultMetricsPort = 8888
	DefaultZPagesPort  = 55679
	DefaultTimeout     = 5 * time.Second
)

// zPages debug sub-pages probed by ProbeZPages, in display order.
var zpagesSubPages = []string{"servicez", "pipelinez", "extensionz"}

// HealthURL returns the health check endpoint URL.
func (c *Client) HealthURL() string {
	return fmt.Sprintf("http://%s:%d/health", c.config.Host, c.config.HealthPort)
}

// MetricsURL returns the Prometheus metrics endpoint URL.
func (c *Client) MetricsURL() string {
	return fmt.Sprintf("http://%s:%d/metrics", c.config.Host, c.config.MetricsPort)
}

// ZPagesURL returns the zPages web UI root URL.
func (c *Client) ZPagesURL() string {
	return fmt.Sprintf("http://%s:%d/debug/", c.config.Host, c.config.ZPagesPort)
}

// CheckHealth polls the health check endpoint.
func (c *Client) CheckHealth(ctx context.Context) EndpointResult {
	return c.Fetch(ctx, c.HealthURL())
}

// FetchMetrics polls the Prometheus metrics endpoint.
func (c *Client) FetchMetrics(ctx context.Context) EndpointResult {
	return c.Fetch(ctx, c.MetricsURL())
}

// CheckZPages polls the zPages root page.
func (c *Client) CheckZPages(ctx context.Context) EndpointResult {
	return c.Fetch(ctx, c.ZPagesURL())
}

// ProbeZPages checks the zPages root plus its debug sub-pages. The
// sub-pages are fetched concurrently; only reachability and status are
// kept, their bodies are never rendered.
func (c *Client) ProbeZPages(ctx context.Context) ZPagesResult {
	out := ZPagesResult{
		Root: c.CheckZPages(ctx),
		Subs: make([]SubPage, len(zpagesSubPages)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range zpagesSubPages {
		g.Go(func() error {
			r := c.Fetch(ctx, c.ZPagesURL()+name)
			r.Body = ""
			out.Subs[i] = SubPage{Name: name, Result: r}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
