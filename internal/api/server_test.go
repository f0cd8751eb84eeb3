package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/config"
)

const exampleSection = `{"b":400,"h":400,"as1":1257,"as2":1257,"fck":30,"fyk":500,"cover":45}`

func newTestServer(t *testing.T, mutate ...func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Rate = 1000
	cfg.Burst = 1000
	for _, fn := range mutate {
		fn(&cfg)
	}
	require.NoError(t, cfg.Validate())
	return New(cfg, slog.New(slog.DiscardHandler)).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.10:40000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDPassthrough(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEnvelope(t *testing.T) {
	body := `{"section":` + exampleSection + `,"design_point":{"n":1500,"m":80}}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/column/envelope", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp EnvelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Envelope)
	assert.Len(t, resp.Envelope.Points, 81)
	assert.InDelta(t, 3813.0, resp.Envelope.PureCompression.N, 1)
	assert.InDelta(t, -1093.0, resp.Envelope.PureTension.N, 1)
	assert.Positive(t, resp.Area)

	require.NotNil(t, resp.Check)
	assert.True(t, resp.Check.Inside)
	require.NotNil(t, resp.Check.MRd)
	assert.Greater(t, *resp.Check.MRd, 200.0)
	require.NotNil(t, resp.Check.Utilisation)
	assert.Less(t, *resp.Check.Utilisation, 1.0)
}

func TestEnvelopeWithoutDesignPoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/column/envelope", `{"section":`+exampleSection+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"check"`)
}

func TestEnvelopeDefaultsCover(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/column/envelope",
		`{"section":{"b":300,"h":500,"as1":942,"as2":942,"fck":25,"fyk":500}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EnvelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 45.0, resp.Section.Cover)
}

func TestCheck(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name       string
		point      string
		inside     bool
		hasMRd     bool
		overloaded bool
	}{
		{"inside", `{"n":1500,"m":80}`, true, true, false},
		{"outside", `{"n":1500,"m":400}`, false, true, true},
		{"tension inside", `{"n":-300,"m":50}`, true, true, false},
		{"beyond squash load", `{"n":5000,"m":10}`, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/column/check", `{"section":`+exampleSection+`,"design_point":`+tt.point+`}`)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var c Check
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
			assert.Equal(t, tt.inside, c.Inside)
			assert.Equal(t, tt.hasMRd, c.MRd != nil)
			if tt.overloaded {
				require.NotNil(t, c.Utilisation)
				assert.Greater(t, *c.Utilisation, 1.0)
			}
			if !tt.hasMRd {
				assert.Nil(t, c.Utilisation)
			}
		})
	}
}

func TestCheckRejects(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"malformed json", `{"section":`, http.StatusBadRequest, ""},
		{"unknown field", `{"section":` + exampleSection + `,"design":{}}`, http.StatusBadRequest, ""},
		{"missing design point", `{"section":` + exampleSection + `}`, http.StatusUnprocessableEntity, "design_point"},
		{"zero width", `{"section":{"b":0,"h":400,"fck":30,"fyk":500},"design_point":{"n":1,"m":1}}`, http.StatusUnprocessableEntity, "B"},
		{"zero cover", `{"section":{"b":400,"h":400,"fck":30,"fyk":500,"cover":0},"design_point":{"n":1,"m":1}}`, http.StatusUnprocessableEntity, "Cover"},
		{"cover too large", `{"section":{"b":400,"h":400,"fck":30,"fyk":500,"cover":250},"design_point":{"n":1,"m":1}}`, http.StatusUnprocessableEntity, "Cover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/column/check", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.field, resp.Field)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestSVG(t *testing.T) {
	body := `{"section":` + exampleSection + `,"design_point":{"n":1500,"m":80}}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/column/svg", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "<polygon")
}

func TestMarkers(t *testing.T) {
	text := `Option A: [MN_DIAGRAM b=400 h=400 As=1257 fck=30 fyk=500 NEd=1500 MEd=80]
Option B: [MN_DIAGRAM b=400 h=400 fck=30]`

	rec := do(t, newTestServer(t), http.MethodPost, "/api/marker", text)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp MarkerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Markers, 1)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "fyk")

	m := resp.Markers[0]
	assert.Equal(t, 1257.0, m.Section.As2)
	assert.Len(t, m.KeyPoints, 4)
	require.NotNil(t, m.Check)
	assert.True(t, m.Check.Inside)
}

func TestMarkersNone(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/marker", "no diagram in this answer")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMetrics(t *testing.T) {
	h := newTestServer(t)
	do(t, h, http.MethodPost, "/api/column/check", `{"section":`+exampleSection+`,"design_point":{"n":1500,"m":80}}`)
	do(t, h, http.MethodPost, "/api/column/check", `{"section":`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `gorcc_evaluations_total{verdict="inside"} 1`)
	assert.Contains(t, out, `gorcc_rejected_inputs_total{reason="malformed"} 1`)
	assert.Contains(t, out, `gorcc_http_request_duration_seconds_count{method="POST",route="/api/column/check"} 2`)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) {
		c.Rate = 0.001
		c.Burst = 1
	})

	body := `{"section":` + exampleSection + `}`
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/column/envelope", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/api/column/envelope", body).Code)

	// health checks are not limited
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) {
		c.Origins = []string{"https://app.example"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/column/envelope", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
