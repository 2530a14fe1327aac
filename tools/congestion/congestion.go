package congestion

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/leofalp/lifemcp/core/toolerr"
	"github.com/leofalp/lifemcp/internal/utils"
)

// Defaults used when no option overrides them. The sample endpoint serves
// canned data; deployments with an API key point CONGESTION_BASE_URL at
// their keyed URL instead.
const (
	DefaultBaseURL = "http://openapi.seoul.go.kr:8088/sample/json/citydata_ppltn/1/5/"
	DefaultPlace   = "강남역"
)

// Client looks up real-time place congestion from the city-data API.
type Client struct {
	baseURL      string
	defaultPlace string
	httpClient   *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides the endpoint the place name is appended to.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithDefaultPlace overrides the place used when a lookup name is blank.
func WithDefaultPlace(place string) Option {
	return func(c *Client) { c.defaultPlace = place }
}

// WithHTTPClient overrides the HTTP client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// NewClient builds a client for the city-data congestion endpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		defaultPlace: DefaultPlace,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the congestion status of one place and renders it as two
// lines: the congestion level, then the advisory message. A blank name uses
// the client's default place. Any transport, status, decode, or empty-data
// failure comes back as an upstream error.
func (c *Client) Lookup(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.defaultPlace
	}

	requestURL := c.baseURL + url.PathEscape(name)

	timer := utils.NewTimer()
	timer.Start()
	resp, data, err := utils.DoGetSync[CityDataResponse](ctx, c.httpClient, requestURL)
	timer.Stop()
	if err != nil {
		return "", toolerr.Upstreamf("congestion lookup for %q: %v", name, err)
	}
	slog.Debug("fetched congestion data",
		"place", name,
		"status", resp.StatusCode,
		"duration", timer.GetDuration(),
	)

	if len(data.Rows) == 0 {
		return "", toolerr.Upstreamf("congestion lookup for %q: no data rows in response", name)
	}

	row := data.Rows[0]
	return fmt.Sprintf("%s congestion level: %s\n%s", name, row.CongestionLvl, row.CongestionMsg), nil
}

// LookupMultiple fetches every place in names sequentially, in input order,
// and renders one bullet line per place. The first failure aborts the
// batch. An empty batch yields an empty string.
func (c *Client) LookupMultiple(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		status, err := c.Lookup(ctx, name)
		if err != nil {
			return "", err
		}
		lines = append(lines, "- "+strings.ReplaceAll(status, "\n", " "))
	}

	return strings.Join(lines, "\n"), nil
}
