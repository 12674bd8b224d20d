package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/kiwibot/internal/farm"
)

func mustFarm(t *testing.T, cfg *farm.Config) *farm.Farm {
	t.Helper()
	f, err := farm.New(cfg)
	require.NoError(t, err)
	return f
}

// singlePlotConfig is a tiny solvable farm: one plot two steps east of the
// start, station adjacent to the plot.
func singlePlotConfig() *farm.Config {
	return &farm.Config{
		Radius:   2,
		Start:    farm.HexCoord{Q: 0, R: 0},
		Basket:   farm.BasketConfig{MaxMassKg: 5, MaxVolumeCm3: 10000},
		Stations: []farm.HexCoord{{Q: 1, R: 1}},
		Plots:    []farm.PlotConfig{{Q: 2, R: 0, MassKg: 5, VolumeCm3: 1}},
	}
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestStatusEndpoint(t *testing.T) {
	s := &Server{Farm: mustFarm(t, farm.DefaultConfig())}
	rec, body := doGet(t, s.Handler(), "/api/v1/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "kiwibot", body["name"])
	assert.EqualValues(t, 4, body["radius"])
	assert.EqualValues(t, 12, body["plots"])
	assert.EqualValues(t, 3, body["stations"])
	assert.EqualValues(t, 0, body["cached_plans"])
}

func TestFarmEndpoint(t *testing.T) {
	s := &Server{Farm: mustFarm(t, farm.DefaultConfig())}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Radius int `json:"radius"`
		Start  struct {
			Q int `json:"q"`
			R int `json:"r"`
		} `json:"start"`
		Basket   map[string]float64 `json:"basket"`
		Stations []struct {
			Q int `json:"q"`
			R int `json:"r"`
		} `json:"stations"`
		Plots []struct {
			Q         int     `json:"q"`
			R         int     `json:"r"`
			MassKg    float64 `json:"mass_kg"`
			VolumeCm3 float64 `json:"volume_cm3"`
		} `json:"plots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 4, body.Radius)
	assert.Equal(t, 0, body.Start.Q)
	assert.Equal(t, 0, body.Start.R)
	assert.Equal(t, 12.0, body.Basket["max_mass_kg"])
	assert.Equal(t, 15000.0, body.Basket["max_volume_cm3"])
	assert.Len(t, body.Stations, 3)
	require.Len(t, body.Plots, 12)

	found := false
	for _, p := range body.Plots {
		if p.Q == 1 && p.R == 0 {
			found = true
			assert.Equal(t, 4.0, p.MassKg)
			assert.Equal(t, 3000.0, p.VolumeCm3)
		}
	}
	assert.True(t, found, "plot (1,0) missing from farm payload")
}

func TestPlanEndpoint(t *testing.T) {
	s := &Server{Farm: mustFarm(t, singlePlotConfig())}
	h := s.Handler()

	rec, body := doGet(t, h, "/api/v1/plan")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["solvable"])
	assert.EqualValues(t, 3, body["moves"])
	assert.EqualValues(t, 1, body["harvests"])
	assert.EqualValues(t, 1, body["unloads"])
	assert.EqualValues(t, 3, body["cost"])

	plan, ok := body["plan"].(map[string]any)
	require.True(t, ok, "plan object missing")
	steps, ok := plan["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 3)

	// The solved plan is cached now.
	_, status := doGet(t, h, "/api/v1/status")
	assert.EqualValues(t, 1, status["cached_plans"])
}

func TestPlanCustomStart(t *testing.T) {
	s := &Server{Farm: mustFarm(t, singlePlotConfig())}
	rec, body := doGet(t, s.Handler(), "/api/v1/plan?q=1&r=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["solvable"])
	start, ok := body["start"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, start["q"])
	assert.EqualValues(t, 1, start["r"])
}

func TestPlanBadQuery(t *testing.T) {
	s := &Server{Farm: mustFarm(t, singlePlotConfig())}
	h := s.Handler()

	rec, _ := doGet(t, h, "/api/v1/plan?q=abc&r=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, h, "/api/v1/plan?q=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "q without r")
}

func TestPlanInvalidStart(t *testing.T) {
	s := &Server{Farm: mustFarm(t, singlePlotConfig())}
	rec, _ := doGet(t, s.Handler(), "/api/v1/plan?q=9&r=9")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanNoSolution(t *testing.T) {
	cfg := singlePlotConfig()
	cfg.Plots[0].MassKg = 99 // heavier than any basket

	s := &Server{Farm: mustFarm(t, cfg)}
	rec, body := doGet(t, s.Handler(), "/api/v1/plan")

	require.Equal(t, http.StatusOK, rec.Code, "unsolvable is a result, not an error")
	assert.Equal(t, false, body["solvable"])
	assert.Contains(t, body["reason"], "no harvest plan")
}

func TestPlanExpansionLimit(t *testing.T) {
	s := &Server{Farm: mustFarm(t, farm.DefaultConfig()), MaxExpansions: 3}
	rec, _ := doGet(t, s.Handler(), "/api/v1/plan")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPlanRateLimited(t *testing.T) {
	s := &Server{
		Farm:       mustFarm(t, singlePlotConfig()),
		RateLimit:  2,
		RateWindow: time.Hour,
	}
	h := s.Handler()

	for i := 0; i < 2; i++ {
		rec, _ := doGet(t, h, "/api/v1/plan")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}
	rec, _ := doGet(t, h, "/api/v1/plan")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other endpoints are not limited.
	rec, _ = doGet(t, h, "/api/v1/status")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.Greater(t, rl.RetryAfter("10.0.0.1"), 0)

	// Separate bucket per IP.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:45678"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.4, 203.0.113.7")
	assert.Equal(t, "198.51.100.4", clientIP(req))
}

func TestCORSPreflight(t *testing.T) {
	s := &Server{Farm: mustFarm(t, singlePlotConfig())}
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plan", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
