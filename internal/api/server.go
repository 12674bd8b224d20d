// Package api serves the farm and computed harvest plans over HTTP.
// All endpoints are read-only GETs; the plan endpoint is rate limited
// because a cold solve is the most expensive operation in the process.
// See design doc Section 7.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/talgya/kiwibot/internal/farm"
	"github.com/talgya/kiwibot/internal/search"
)

const (
	defaultRateLimit  = 60
	defaultRateWindow = time.Minute
)

// Server serves farm state and harvest plans over HTTP.
type Server struct {
	Farm          *farm.Farm
	Port          int
	MaxExpansions int           // search budget per plan; 0 = unbounded
	RateLimit     int           // plan requests per window per IP; 0 = default
	RateWindow    time.Duration // 0 = default

	// Cached plans (start coordinate → plan). Solving is serialized under
	// the same mutex, so concurrent requests for a cold start coordinate
	// run one search, not many.
	planMu    sync.Mutex
	planCache map[farm.HexCoord]*search.Plan
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr,
		"plots", s.Farm.NumPlots(), "stations", len(s.Farm.Stations()))

	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Handler builds the route table. Split from Start so tests can drive the
// API through httptest.
func (s *Server) Handler() http.Handler {
	limit, window := s.RateLimit, s.RateWindow
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	planLimiter := NewRateLimiter(limit, window)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/farm", s.handleFarm)
	mux.HandleFunc("/api/v1/plan", RateLimitMiddleware(planLimiter, s.handlePlan))

	return corsMiddleware(mux)
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.planMu.Lock()
	cached := len(s.planCache)
	s.planMu.Unlock()

	f := s.Farm
	writeJSON(w, map[string]any{
		"name":     "kiwibot",
		"radius":   f.Radius,
		"start":    f.Start,
		"plots":    f.NumPlots(),
		"stations": len(f.Stations()),
		"basket": map[string]float64{
			"max_mass_kg":    f.MaxMass,
			"max_volume_cm3": f.MaxVolume,
		},
		"crop": map[string]float64{
			"total_mass_kg":    f.TotalMass(),
			"total_volume_cm3": f.TotalVolume(),
		},
		"max_expansions": s.MaxExpansions,
		"cached_plans":   cached,
	})
}

// handleFarm returns the full farm layout for map renderers.
func (s *Server) handleFarm(w http.ResponseWriter, r *http.Request) {
	type coordEntry struct {
		Q int `json:"q"`
		R int `json:"r"`
	}
	type plotEntry struct {
		Q         int     `json:"q"`
		R         int     `json:"r"`
		MassKg    float64 `json:"mass_kg"`
		VolumeCm3 float64 `json:"volume_cm3"`
	}

	f := s.Farm
	stations := make([]coordEntry, 0, len(f.Stations()))
	for _, st := range f.Stations() {
		stations = append(stations, coordEntry{Q: st.Q, R: st.R})
	}
	plots := make([]plotEntry, 0, f.NumPlots())
	for _, p := range f.Plots() {
		plots = append(plots, plotEntry{
			Q:         p.Coord.Q,
			R:         p.Coord.R,
			MassKg:    p.Mass,
			VolumeCm3: p.Volume,
		})
	}

	writeJSON(w, map[string]any{
		"radius": f.Radius,
		"start":  coordEntry{Q: f.Start.Q, R: f.Start.R},
		"basket": map[string]float64{
			"max_mass_kg":    f.MaxMass,
			"max_volume_cm3": f.MaxVolume,
		},
		"stations": stations,
		"plots":    plots,
	})
}

// handlePlan solves from the farm start, or from ?q=&r= when given.
// An unsolvable farm is a result, not a transport failure, so it comes
// back 200 with solvable=false.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	start := s.Farm.Start
	qs, rs := r.URL.Query().Get("q"), r.URL.Query().Get("r")
	if qs != "" || rs != "" {
		q, err1 := strconv.Atoi(qs)
		rr, err2 := strconv.Atoi(rs)
		if err1 != nil || err2 != nil {
			http.Error(w, "q and r must both be integers", http.StatusBadRequest)
			return
		}
		start = farm.HexCoord{Q: q, R: rr}
	}

	plan, err := s.plan(start)
	switch {
	case err == nil:
	case errors.Is(err, search.ErrNoSolution):
		writeJSON(w, map[string]any{
			"solvable": false,
			"start":    start,
			"reason":   err.Error(),
		})
		return
	case errors.Is(err, search.ErrInvalidStart):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, search.ErrLimit):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"solvable": true,
		"start":    start,
		"moves":    plan.Moves(),
		"harvests": plan.Harvests(),
		"unloads":  plan.Unloads(),
		"cost":     plan.Cost,
		"plan":     plan,
	})
}

// plan returns the cached plan for a start coordinate, solving on miss.
func (s *Server) plan(start farm.HexCoord) (*search.Plan, error) {
	s.planMu.Lock()
	defer s.planMu.Unlock()

	if s.planCache == nil {
		s.planCache = make(map[farm.HexCoord]*search.Plan)
	}
	if p, ok := s.planCache[start]; ok {
		return p, nil
	}

	solver := &search.Solver{Farm: s.Farm, MaxExpansions: s.MaxExpansions}
	p, err := solver.Solve(start)
	if err != nil {
		return nil, err
	}
	s.planCache[start] = p
	slog.Info("plan solved", "start", start.String(),
		"moves", p.Moves(), "expanded", p.Stats.Expanded)
	return p, nil
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
