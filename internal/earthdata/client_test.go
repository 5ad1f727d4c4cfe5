package earthdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/observability"
)

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		log:        logger.New("test"),
	}
}

func writeSearchResponse(t *testing.T, w http.ResponseWriter, entries ...searchEntry) {
	t.Helper()
	resp := searchResponse{}
	resp.Feed.Entry = entries
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestProductFor(t *testing.T) {
	tests := []struct {
		indicator models.Indicator
		shortName string
		backed    bool
	}{
		{models.IndicatorNDVI, "MOD13Q1", true},
		{models.IndicatorGlacier, "MOD10A2", true},
		{models.IndicatorUrban, "VNP46A2", true},
		{models.IndicatorTemperature, "MOD11A2", true},
		{models.IndicatorGLOF, "", false},
		{models.IndicatorForest, "", false},
		{models.IndicatorLandslide, "", false},
		{models.IndicatorEarthquake, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.indicator.String(), func(t *testing.T) {
			p, ok := ProductFor(tt.indicator)
			assert.Equal(t, tt.backed, ok)
			assert.Equal(t, tt.shortName, p.ShortName)
		})
	}
}

func TestProductShortNames(t *testing.T) {
	assert.Equal(t, []string{"MOD13Q1", "MOD10A2", "VNP46A2", "MOD11A2"}, ProductShortNames())
}

func TestClient_Availability_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/collections.json":
			assert.Equal(t, "MOD13Q1", r.URL.Query().Get("short_name"))
			assert.Equal(t, "061", r.URL.Query().Get("version"))
			assert.Equal(t, "1", r.URL.Query().Get("page_size"))
			writeSearchResponse(t, w, searchEntry{ID: "C194001241-LPDAAC_ECS", Title: "MODIS Vegetation Indices"})
		case "/search/granules.json":
			assert.Equal(t, "C194001241-LPDAAC_ECS", r.URL.Query().Get("collection_concept_id"))
			assert.Equal(t, "2020-01-01T00:00:00Z,2020-12-31T23:59:59Z", r.URL.Query().Get("temporal"))
			assert.Equal(t, "10", r.URL.Query().Get("page_size"))
			writeSearchResponse(t, w,
				searchEntry{ID: "G1", TimeStart: "2020-01-01T00:00:00Z"},
				searchEntry{ID: "G2", TimeStart: "2020-01-17T00:00:00Z"},
				searchEntry{ID: "G3", TimeStart: "2020-02-02T00:00:00Z"},
			)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	avail, err := c.Availability(context.Background(), models.IndicatorNDVI, 2020)
	require.NoError(t, err)

	assert.True(t, avail.Available)
	assert.Equal(t, 3, avail.GranuleCount)
	assert.Equal(t, "MOD13Q1", avail.Product)
	assert.Equal(t, "C194001241-LPDAAC_ECS", avail.CollectionID)
	assert.Equal(t, models.IndicatorNDVI, avail.Indicator)
	assert.Equal(t, 2020, avail.Year)

	got := testutil.ToFloat64(c.metrics.EarthdataRequests.WithLabelValues("MOD13Q1", "success"))
	assert.Equal(t, 1.0, got)
}

func TestClient_Availability_NoGranules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/collections.json":
			writeSearchResponse(t, w, searchEntry{ID: "C1-SNOW"})
		case "/search/granules.json":
			writeSearchResponse(t, w)
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	avail, err := c.Availability(context.Background(), models.IndicatorGlacier, 2003)
	require.NoError(t, err)

	assert.False(t, avail.Available)
	assert.Equal(t, 0, avail.GranuleCount)
	assert.Equal(t, "MOD10A2", avail.Product)
}

func TestClient_Availability_UnsupportedIndicator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("expected no CMR request, got %s", r.URL.Path)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	avail, err := c.Availability(context.Background(), models.IndicatorGLOF, 2020)
	require.NoError(t, err)

	assert.False(t, avail.Available)
	assert.Empty(t, avail.Product)
	assert.Empty(t, avail.CollectionID)
}

func TestClient_Availability_NoCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeSearchResponse(t, w)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Availability(context.Background(), models.IndicatorUrban, 2020)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no collections found for VNP46A2")
}

func TestClient_Availability_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":["Token is not valid"]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Availability(context.Background(), models.IndicatorTemperature, 2020)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	got := testutil.ToFloat64(c.metrics.EarthdataRequests.WithLabelValues("MOD11A2", "error"))
	assert.Equal(t, 1.0, got)
}

func TestClient_Availability_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := c.Availability(context.Background(), models.IndicatorNDVI, 2020)
	require.Error(t, err)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   string
	}{
		{"no key", "", ""},
		{"raw token", "testkey", "Bearer testkey"},
		{"bearer prefix not doubled", "Bearer abc123", "Bearer abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				writeSearchResponse(t, w, searchEntry{ID: "C1"})
			}))
			defer srv.Close()

			c := testClient(srv.URL)
			c.apiKey = tt.apiKey
			c.Status(context.Background())

			assert.Equal(t, tt.want, gotAuth)
		})
	}
}

func TestClient_Status(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/collections.json", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("page_size"))
			writeSearchResponse(t, w, searchEntry{ID: "C1"})
		}))
		defer srv.Close()

		c := testClient(srv.URL)
		c.apiKey = "testkey"
		status := c.Status(context.Background())

		assert.True(t, status.Reachable)
		assert.True(t, status.Configured)
		assert.Equal(t, srv.URL, status.BaseURL)
		assert.Equal(t, []string{"MOD13Q1", "MOD10A2", "VNP46A2", "MOD11A2"}, status.Products)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		srv.Close()

		c := testClient(srv.URL)
		status := c.Status(context.Background())

		assert.False(t, status.Reachable)
		assert.False(t, status.Configured)
	})
}
