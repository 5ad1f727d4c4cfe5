package earthdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/config"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/observability"
)

const userAgent = "EarthPulse/1.0"

// Client queries the NASA Earthdata Common Metadata Repository for dataset
// availability. It never downloads granules; the simulation engine remains
// the data source, and CMR only reports what real coverage exists.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	log        *logger.Logger
}

// NewClient creates a CMR client from configuration.
func NewClient(cfg config.EarthDataConfig, metrics *observability.Metrics, log *logger.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.CMRBaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    metrics,
		log:        log,
	}
}

// Availability reports whether the CMR holds granules for the indicator's
// backing dataset in the given year. Indicators without a backing dataset
// report unavailable without any network call.
func (c *Client) Availability(ctx context.Context, indicator models.Indicator, year int) (Availability, error) {
	avail := Availability{Indicator: indicator, Year: year}

	product, ok := ProductFor(indicator)
	if !ok {
		return avail, nil
	}
	avail.Product = product.ShortName

	collectionID, err := c.collectionID(ctx, product)
	if err != nil {
		c.metrics.EarthdataRequests.WithLabelValues(product.ShortName, "error").Inc()
		return avail, fmt.Errorf("resolve collection %s: %w", product.ShortName, err)
	}
	avail.CollectionID = collectionID

	count, err := c.granuleCount(ctx, collectionID, year, product.GranulePageSize)
	if err != nil {
		c.metrics.EarthdataRequests.WithLabelValues(product.ShortName, "error").Inc()
		return avail, fmt.Errorf("count granules for %s: %w", product.ShortName, err)
	}

	c.metrics.EarthdataRequests.WithLabelValues(product.ShortName, "success").Inc()
	avail.GranuleCount = count
	avail.Available = count > 0
	return avail, nil
}

// Status probes the CMR search endpoint and reports client configuration.
func (c *Client) Status(ctx context.Context) Status {
	status := Status{
		Configured: c.apiKey != "",
		BaseURL:    c.baseURL,
		Products:   ProductShortNames(),
	}

	params := url.Values{"page_size": {"1"}}
	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/search/collections.json", params, &resp); err != nil {
		c.log.Warn("CMR unreachable", map[string]interface{}{
			"error": err.Error(),
		})
		return status
	}
	status.Reachable = true
	return status
}

// collectionID resolves a product's concept ID via the collections search.
func (c *Client) collectionID(ctx context.Context, product Product) (string, error) {
	params := url.Values{
		"short_name": {product.ShortName},
		"page_size":  {"1"},
	}
	if product.Version != "" {
		params.Set("version", product.Version)
	}

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/search/collections.json", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Feed.Entry) == 0 {
		return "", fmt.Errorf("no collections found for %s", product.ShortName)
	}
	return resp.Feed.Entry[0].ID, nil
}

// granuleCount counts granules within one calendar year.
func (c *Client) granuleCount(ctx context.Context, collectionID string, year, pageSize int) (int, error) {
	params := url.Values{
		"collection_concept_id": {collectionID},
		"temporal":              {fmt.Sprintf("%d-01-01T00:00:00Z,%d-12-31T23:59:59Z", year, year)},
		"page_size":             {strconv.Itoa(pageSize)},
	}

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/search/granules.json", params, &resp); err != nil {
		return 0, err
	}
	return len(resp.Feed.Entry), nil
}

func (c *Client) get(ctx context.Context, fullURL string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimPrefix(c.apiKey, "Bearer "))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("CMR request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("CMR API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Availability reports real-data coverage for one indicator and year.
type Availability struct {
	Indicator    models.Indicator `json:"indicator"`
	Year         int              `json:"year"`
	Product      string           `json:"product,omitempty"`
	CollectionID string           `json:"collection_id,omitempty"`
	Available    bool             `json:"available"`
	GranuleCount int              `json:"granule_count"`
}

// Status describes client configuration and CMR reachability.
type Status struct {
	Configured bool     `json:"api_key_configured"`
	Reachable  bool     `json:"reachable"`
	BaseURL    string   `json:"cmr_url"`
	Products   []string `json:"products"`
}

// CMR search response types. Collection and granule searches share the same
// Atom feed envelope.

type searchResponse struct {
	Feed struct {
		Entry []searchEntry `json:"entry"`
	} `json:"feed"`
}

type searchEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TimeStart string `json:"time_start"`
}
