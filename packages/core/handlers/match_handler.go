package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"core/models"
	"core/services"
	"core/utils"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches lists matches, optionally for a single round
// @Summary List matches
// @Tags matches
// @Produce json
// @Param id path int true "Tournament ID"
// @Param round query int false "Filter by round number"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id}/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	var round *int
	if roundStr := c.Query("round"); roundStr != "" {
		r, err := strconv.Atoi(roundStr)
		if err != nil || r < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round parameter"})
			return
		}
		round = &r
	}

	matches, err := h.matchService.GetMatches(tournamentID, round)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// RecordResult records or overwrites a match result
// @Summary Record match result
// @Description Store a best-of-five result (winner at exactly 3 sets) and apply the rating deltas. Recording again overwrites the result and recomputes deltas against current ratings.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param matchId path string true "Match ID (R{round}-M{index})"
// @Param result body models.RecordResultRequest true "Set scores"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tournaments/{id}/matches/{matchId}/result [put]
func (h *MatchHandler) RecordResult(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	matchID := c.Param("matchId")

	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.RecordResult(tournamentID, matchID, *req.Team1Score, *req.Team2Score)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, services.ErrParticipantsMissing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record result"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetRestingPlayers lists the players who sit out a round
// @Summary Get resting players
// @Description Get the players absent from every match of the given round
// @Tags matches
// @Produce json
// @Param id path int true "Tournament ID"
// @Param round path int true "Round number"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/rounds/{round}/resting [get]
func (h *MatchHandler) GetRestingPlayers(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	roundStr := c.Param("round")
	round, err := strconv.Atoi(roundStr)
	if err != nil || round < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round number"})
		return
	}

	resting, err := h.matchService.GetRestingPlayers(tournamentID, round)
	if err != nil {
		if errors.Is(err, services.ErrRoundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve resting players"})
		return
	}

	c.JSON(http.StatusOK, resting)
}
