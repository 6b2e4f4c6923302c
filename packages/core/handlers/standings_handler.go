package handlers

import (
	"errors"
	"net/http"

	"core/services"

	"github.com/gin-gonic/gin"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(standingsService *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
	}
}

// GetStandings computes the ranked standings for a tournament
// @Summary Get standings
// @Description Recompute the full standings projection from the current players and matches
// @Tags standings
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.StandingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id}/standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	standings, err := h.standingsService.GetStandings(tournamentID)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute standings"})
		return
	}

	c.JSON(http.StatusOK, standings)
}
