package services

import (
	"errors"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type StandingsService struct {
	db *gorm.DB
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return &StandingsService{
		db: db,
	}
}

// GetStandings recomputes the full standings projection from the current
// players and matches. Nothing is cached or persisted.
func (s *StandingsService) GetStandings(tournamentID uint) (*models.StandingsResponse, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	var players []models.Player
	if err := s.db.Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := s.db.Where("tournament_id = ?", tournamentID).
		Order("round_number ASC").
		Find(&matches).Error; err != nil {
		return nil, err
	}

	stats := utils.ComputeStandings(players, matches)

	return &models.StandingsResponse{
		Stats:  stats,
		Podium: utils.PodiumPlayerIDs(stats),
	}, nil
}
