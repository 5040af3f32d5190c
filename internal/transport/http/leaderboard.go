package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
)

const maxStandingsLimit = 100

type LeaderboardHandler struct {
	Scores score.Store
}

func NewLeaderboardHandler(scores score.Store) *LeaderboardHandler {
	return &LeaderboardHandler{Scores: scores}
}

// Leaderboard serves GET /api/leaderboard?limit=N
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	limit := score.DefaultStandingsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStandingsLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	standings, err := h.Scores.Standings(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[LEADERBOARD] Failed to load standings: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": standings})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter assembles the read-only API.
func NewRouter(handler *LeaderboardHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middlewares...)

	router.GET("/healthz", Health)
	router.GET("/api/leaderboard", handler.Leaderboard)
	return router
}
