package services

import (
	"errors"

	"core/models"
	"core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

// AddPlayer appends a player to the tournament roster. The initial rating
// snapshot is taken at creation and only changes through a manual
// recalibration (SetPlayerRating).
func (s *PlayerService) AddPlayer(tournamentID uint, req models.AddPlayerRequest) (*models.Player, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	rating := utils.InitialRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	player := &models.Player{
		ID:            uuid.NewString(),
		TournamentID:  tournamentID,
		Name:          req.Name,
		Avatar:        req.Avatar,
		Rating:        rating,
		InitialRating: rating,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayers(tournamentID uint) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(tournamentID uint, playerID string) (*models.Player, error) {
	var player models.Player

	result := s.db.Where("tournament_id = ? AND id = ?", tournamentID, playerID).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// RemovePlayer drops a player from the roster. Matches referencing the
// player are left intact; orphaned ids in the history are tolerated and
// no rating recomputation is triggered.
func (s *PlayerService) RemovePlayer(tournamentID uint, playerID string) error {
	result := s.db.Where("tournament_id = ? AND id = ?", tournamentID, playerID).Delete(&models.Player{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// SetPlayerRating manually recalibrates a player. Both rating and
// initial_rating are overwritten with the same value, so the player's
// reported rating change reads zero right after the call.
func (s *PlayerService) SetPlayerRating(tournamentID uint, playerID string, newRating float64) (*models.Player, error) {
	player, err := s.GetPlayerByID(tournamentID, playerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"rating":         newRating,
		"initial_rating": newRating,
	}
	if err := s.db.Model(player).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPlayerByID(tournamentID, playerID)
}
