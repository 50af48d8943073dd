package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/couchcryptid/radiative-forcing-dashboard/internal/adapter/http"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/chart"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/domain"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *domain.Dataset {
	return domain.NewDataset([]domain.Record{
		{Source: "Carbon Dioxide", Measure: domain.MeasureRelative, Contribution: 1.66},
		{Source: "Methane", Measure: domain.MeasureRelative, Contribution: 0.48},
		{Source: "Albedo (Land use)", Measure: domain.MeasureRelative, Contribution: -0.2},
		{Source: "Aerosols (Direct)", Measure: domain.MeasureRelative, Contribution: -0.5},
		{Source: "Solar irradiance", Measure: domain.MeasureRelative, Contribution: 0.12},
		{Source: "Net total", Measure: domain.MeasureTotal, Contribution: 1.6},
	})
}

func newTestServer(ds *domain.Dataset) *httpadapter.Server {
	return httpadapter.NewServer(":0", ds, observability.NewMetricsForTesting(), slog.Default(), false)
}

func postFigure(t *testing.T, srv *httpadapter.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/figure", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeFigure(t *testing.T, rec *httptest.ResponseRecorder) chart.Figure {
	t.Helper()
	var fig chart.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	require.Len(t, fig.Data, 1)
	return fig
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(testDataset())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Radiative Forcing")
	// Every source appears as a checklist option.
	for _, src := range testDataset().Sources() {
		assert.Contains(t, body, src)
	}
	// Default selection is pre-checked, the rest is not.
	assert.Contains(t, body, `value="Methane" checked`)
	assert.NotContains(t, body, `value="Aerosols (Direct)" checked`)
	// The initial figure is embedded for first paint.
	assert.Contains(t, body, `"waterfall"`)
}

func TestFigureEndpoint(t *testing.T) {
	srv := newTestServer(testDataset())

	t.Run("default selection renders one bar per matching row", func(t *testing.T) {
		rec := postFigure(t, srv, `{"sources":["Carbon Dioxide","Methane","Albedo (Land use)","Solar irradiance","Net total"]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		fig := decodeFigure(t, rec)
		assert.Equal(t, []string{"Carbon Dioxide", "Methane", "Albedo (Land use)", "Solar irradiance", "Net total"}, fig.Data[0].X)
		assert.Equal(t, []float64{1.66, 0.48, -0.2, 0.12, 1.6}, fig.Data[0].Y)
	})

	t.Run("empty selection renders zero bars", func(t *testing.T) {
		rec := postFigure(t, srv, `{"sources":[]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		fig := decodeFigure(t, rec)
		assert.Empty(t, fig.Data[0].X)
		assert.Empty(t, fig.Data[0].Y)
	})

	t.Run("all sources reproduce every row in order", func(t *testing.T) {
		ds := testDataset()
		raw, err := json.Marshal(map[string][]string{"sources": ds.Sources()})
		require.NoError(t, err)

		rec := postFigure(t, srv, string(raw))

		require.Equal(t, http.StatusOK, rec.Code)
		fig := decodeFigure(t, rec)
		assert.Equal(t, ds.Sources(), fig.Data[0].X)
	})

	t.Run("identical selections yield identical figures", func(t *testing.T) {
		body := `{"sources":["Methane","Net total"]}`
		first := postFigure(t, srv, body)
		second := postFigure(t, srv, body)

		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec := postFigure(t, srv, `{invalid`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid request body", resp["error"])
	})
}

func TestSourcesEndpoint(t *testing.T) {
	srv := newTestServer(testDataset())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sources", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testDataset().Sources(), resp["sources"])
	assert.Equal(t, domain.DefaultSelection(), resp["defaults"])
}

func TestChartPNG(t *testing.T) {
	srv := newTestServer(testDataset())

	t.Run("explicit selection", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png?source=Methane&source=Net+total", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
	})

	t.Run("no parameters fall back to the default selection", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(testDataset())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	t.Run("ready with rows loaded", func(t *testing.T) {
		srv := newTestServer(testDataset())
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready with an empty dataset", func(t *testing.T) {
		srv := newTestServer(domain.NewDataset(nil))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not ready", body["status"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(testDataset())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
