package handlers

import (
	"blog-server/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the pending view-count buffer for inspection and lets
// an operator force a flush instead of waiting for the interval.
type StatsHandler struct {
	flusher *services.ViewFlusher
}

func NewStatsHandler(flusher *services.ViewFlusher) *StatsHandler {
	return &StatsHandler{flusher: flusher}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	posts, views := h.flusher.Stats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"pending_posts": posts,
			"pending_views": views,
		},
	})
}

func (h *StatsHandler) Flush(c *gin.Context) {
	h.flusher.Flush()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "flushed",
	})
}
