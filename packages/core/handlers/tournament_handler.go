package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"core/models"
	"core/services"
	"core/utils"

	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
	exportService     *services.ExportService
}

func NewTournamentHandler(tournamentService *services.TournamentService, exportService *services.ExportService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		exportService:     exportService,
	}
}

// CreateTournament creates a new tournament
// @Summary Create a tournament
// @Description Create a new tournament with an empty roster
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament to create"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tournament"})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// GetTournaments lists tournaments with pagination
// @Summary List tournaments
// @Description Get tournaments with optional status filter
// @Tags tournaments
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param status query string false "Filter by status" Enums(opened,ongoing,finished)
// @Success 200 {object} models.PaginatedTournamentsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments [get]
func (h *TournamentHandler) GetTournaments(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	var status *string
	if statusStr := c.Query("status"); statusStr != "" {
		status = &statusStr
	}

	tournaments, err := h.tournamentService.GetAllTournaments(page, perPage, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tournaments"})
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetTournament retrieves a tournament with its players and matches
// @Summary Get tournament by ID
// @Description Get the full tournament snapshot: players, matches, current round
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	tournament, err := h.tournamentService.GetTournamentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// UpdateTournament partially updates a tournament
// @Summary Update tournament
// @Description Update name, description or status; marking a tournament finished stops auto-advance
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param tournament body models.UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [patch]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(id, req)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tournament"})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament deletes a tournament
// @Summary Delete tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	if err := h.tournamentService.DeleteTournament(id); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted"})
}

// AdvanceRound generates the next round of matches
// @Summary Advance to the next round
// @Description Generate balanced pairings for the next round from the current roster and match history
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 201 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tournaments/{id}/rounds [post]
func (h *TournamentHandler) AdvanceRound(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	matches, err := h.tournamentService.AdvanceRound(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
		case errors.Is(err, utils.ErrInsufficientPlayers):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance round"})
		}
		return
	}

	c.JSON(http.StatusCreated, matches)
}

// ResetMatches clears all matches, keeping players and their ratings
// @Summary Reset matches
// @Description Delete every match and reset the round counter; player ratings are kept as-is
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/matches [delete]
func (h *TournamentHandler) ResetMatches(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	if err := h.tournamentService.ResetMatches(id); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Matches reset"})
}

// ResetTournament clears players and matches entirely
// @Summary Reset tournament
// @Description Remove all players and matches, returning the tournament to an empty state
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/reset [post]
func (h *TournamentHandler) ResetTournament(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	if err := h.tournamentService.ResetTournament(id); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament reset"})
}

// ExportTournament exports standings and match history as CSV
// @Summary Export tournament CSV
// @Description Download the standings and the match history in CSV format
// @Tags tournaments
// @Produce text/csv
// @Param id path int true "Tournament ID"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/export [get]
func (h *TournamentHandler) ExportTournament(c *gin.Context) {
	id, ok := parseTournamentID(c)
	if !ok {
		return
	}

	content, err := h.exportService.ExportTournamentCSV(id)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export tournament"})
		return
	}

	filename := fmt.Sprintf("tournament-%d.csv", id)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// parseTournamentID reads the :id path parameter, answering 400 itself
// when it is not a valid id.
func parseTournamentID(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads page/per_page query parameters, answering 400
// itself on invalid input.
func parsePagination(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("per_page", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return 0, 0, false
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page parameter"})
		return 0, 0, false
	}

	if perPage > 100 {
		perPage = 100
	}

	return page, perPage, true
}
