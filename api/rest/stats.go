package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeduel/server/game/stats"
	mw "github.com/pokeduel/server/middleware"
)

// StatsHandler exposes the cache-backed battle statistics views.
type StatsHandler struct {
	stats *stats.Service
}

func NewStatsHandler(s *stats.Service) *StatsHandler {
	return &StatsHandler{stats: s}
}

// Leaderboard handles GET /api/stats/leaderboard.
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	rows, err := h.stats.Leaderboard(c.Request.Context(), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}

// Recent handles GET /api/stats/recent.
func (h *StatsHandler) Recent(c *gin.Context) {
	rows, err := h.stats.Recent(c.Request.Context(), queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"battles": rows})
}

// Record handles GET /api/stats/record, the caller's own standing.
func (h *StatsHandler) Record(c *gin.Context) {
	rec, err := h.stats.RecordOf(c.Request.Context(), mw.GetAccountID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return n
}
