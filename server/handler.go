package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pawnsboard/game"
	"pawnsboard/strategy"
)

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "strategies": strategy.Names})
	}
}

// MovesHandler ranks the moves of the requested player on the posted board.
// Each request gets its own strategy instance.
func MovesHandler(goroutines int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MovesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
			return
		}
		player, err := game.ParsePlayer(req.Player)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Strategy == "" {
			req.Strategy = strategy.MinimaxName
		}
		searcher, err := strategy.New(req.Strategy, goroutines, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		board, err := game.FromSnapshot(req.Board)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		moves, metric, err := searcher.Search(board, player)
		if err != nil {
			log.Error().Err(err).Msgf("%s search for %s failed", req.Strategy, player)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, MovesResponse{Moves: moves, Metric: metric})
	}
}
