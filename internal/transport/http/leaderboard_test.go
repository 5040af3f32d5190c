package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/http/middleware"
)

type stubStore struct {
	standings []score.Standing
	err       error
	lastLimit int
}

func (s *stubStore) RecordWin(context.Context, string) error { return nil }

func (s *stubStore) Standings(_ context.Context, limit int) ([]score.Standing, error) {
	s.lastLimit = limit
	return s.standings, s.err
}

func newTestRouter(store score.Store, origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewLeaderboardHandler(store), middleware.SecurityHeadersMiddleware(), middleware.CORSMiddleware(origins))
}

func TestLeaderboard(t *testing.T) {
	store := &stubStore{standings: []score.Standing{{Rank: 1, PlayerName: "alice", Wins: 5}}}
	router := newTestRouter(store, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Leaderboard []score.Standing `json:"leaderboard"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Leaderboard) != 1 || body.Leaderboard[0].PlayerName != "alice" || body.Leaderboard[0].Wins != 5 {
		t.Fatalf("unexpected body %+v", body)
	}
	if store.lastLimit != 5 {
		t.Fatalf("limit = %d, want 5", store.lastLimit)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("security headers missing")
	}
}

func TestLeaderboardBadLimit(t *testing.T) {
	router := newTestRouter(&stubStore{}, nil)
	for _, q := range []string{"abc", "0", "101"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit="+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: status %d", q, rec.Code)
		}
	}
}

func TestLeaderboardStoreFailure(t *testing.T) {
	router := newTestRouter(&stubStore{err: errors.New("db down")}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(&stubStore{}, []string{"https://example.com"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Fatalf("allowed origin rejected: %d %v", rec.Code, rec.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign origin status = %d", rec.Code)
	}
}
