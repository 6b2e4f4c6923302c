package handlers

import (
	"errors"
	"net/http"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// AddPlayer adds a player to a tournament roster
// @Summary Add player
// @Description Add a player to the tournament; rating defaults to 1500 when omitted
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param player body models.AddPlayerRequest true "Player to add"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/players [post]
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	var req models.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.AddPlayer(tournamentID, req)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add player"})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayers lists the tournament roster
// @Summary List players
// @Tags players
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id}/players [get]
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	players, err := h.playerService.GetPlayers(tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve players"})
		return
	}

	c.JSON(http.StatusOK, players)
}

// RemovePlayer removes a player from the roster
// @Summary Remove player
// @Description Remove a player; past matches referencing the player are left intact
// @Tags players
// @Produce json
// @Param id path int true "Tournament ID"
// @Param playerId path string true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/players/{playerId} [delete]
func (h *PlayerHandler) RemovePlayer(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	playerID := c.Param("playerId")

	if err := h.playerService.RemovePlayer(tournamentID, playerID); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove player"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player removed"})
}

// SetPlayerRating manually recalibrates a player's rating
// @Summary Set player rating
// @Description Overwrite both rating and initial rating with the given value (manual recalibration)
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param playerId path string true "Player ID"
// @Param rating body models.SetPlayerRatingRequest true "New rating"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/players/{playerId}/rating [patch]
func (h *PlayerHandler) SetPlayerRating(c *gin.Context) {
	tournamentID, ok := parseTournamentID(c)
	if !ok {
		return
	}

	playerID := c.Param("playerId")

	var req models.SetPlayerRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.SetPlayerRating(tournamentID, playerID, req.Rating)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	c.JSON(http.StatusOK, player)
}
