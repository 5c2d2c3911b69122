// Package surreal is a minimal SurrealDB client for the seeding CLI. It
// speaks the HTTP /sql endpoint directly: one POST per statement, basic
// auth, namespace and database selected via headers.
package surreal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config carries the connection parameters for one SurrealDB endpoint.
type Config struct {
	URL       string
	User      string
	Pass      string
	Namespace string
	Database  string
	Timeout   time.Duration
	// RPS throttles outgoing statements. Zero means unthrottled.
	RPS float64
}

// QueryResult is one statement result from the /sql endpoint.
type QueryResult struct {
	Time   string              `json:"time"`
	Status string              `json:"status"`
	Result jsoniter.RawMessage `json:"result"`
}

// Client issues SurrealQL over HTTP. Safe for sequential use; the seeder
// never shares it across goroutines.
type Client struct {
	base    string
	user    string
	pass    string
	ns      string
	db      string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient builds a client from config. The base URL is normalized so that
// both "http://host:8000" and "http://host:8000/" work.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Client{
		base:    strings.TrimRight(cfg.URL, "/"),
		user:    cfg.User,
		pass:    cfg.Pass,
		ns:      cfg.Namespace,
		db:      cfg.Database,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		log:     logger.Named("surreal"),
	}
}

// Query executes a SurrealQL statement and returns the per-statement results.
// Only transport failures and non-2xx responses are errors: statement-level
// statuses come back untouched, so a CREATE that hits an existing record is
// a no-op for the caller, not a failure. Re-seeding relies on this.
func (c *Client) Query(ctx context.Context, sql string) ([]QueryResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/sql", strings.NewReader(sql))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/text")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("NS", c.ns)
	req.Header.Set("DB", c.db)
	req.SetBasicAuth(c.user, c.pass)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post /sql: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("surrealdb returned %d: %s", resp.StatusCode, snippet(body))
	}

	var results []QueryResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return results, nil
}

// snippet truncates a response body for error messages.
func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
