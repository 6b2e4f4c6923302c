package services

import (
	"errors"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrRoundNotFound = errors.New("round not found")
	// ErrParticipantsMissing is returned when a match references player
	// rows that no longer exist at all, so no rating can be computed.
	ErrParticipantsMissing = errors.New("match references players that no longer exist")
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// preloadParticipants loads the four player relations including removed
// players, so a match keeps its teams' last known ratings after a roster
// change.
func preloadParticipants(query *gorm.DB) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return query.
		Preload("Team1Player1", unscoped).
		Preload("Team1Player2", unscoped).
		Preload("Team2Player1", unscoped).
		Preload("Team2Player2", unscoped)
}

func (s *MatchService) GetMatches(tournamentID uint, round *int) ([]models.Match, error) {
	query := s.db.Where("tournament_id = ?", tournamentID)
	if round != nil {
		query = query.Where("round_number = ?", *round)
	}

	var matches []models.Match
	result := preloadParticipants(query).Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	utils.SortMatches(matches)
	return matches, nil
}

// RecordResult validates and stores a match result, then applies the
// rating deltas computed from the two teams' current ratings. Recording
// over an existing result overwrites it; deltas are recomputed from the
// ratings at the time of the edit, the previous result is not reverted
// first. Validation happens before any write. Removed players still
// count with their last rating but their own rating is left untouched.
func (s *MatchService) RecordResult(tournamentID uint, matchID string, team1Score, team2Score int) (*models.Match, error) {
	if !utils.ValidateMatchScore(team1Score, team2Score) {
		return nil, utils.ErrInvalidScore
	}

	var match models.Match
	err := preloadParticipants(s.db.Where("tournament_id = ? AND id = ?", tournamentID, matchID)).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if !match.ParticipantsLoaded() {
		return nil, ErrParticipantsMissing
	}

	changes := utils.CalculateRatingChanges(
		match.Team1Player1,
		match.Team1Player2,
		match.Team2Player1,
		match.Team2Player2,
		team1Score,
		team2Score,
	)

	participants := []models.Player{
		match.Team1Player1,
		match.Team1Player2,
		match.Team2Player1,
		match.Team2Player2,
	}
	utils.ApplyRatingChanges(participants, changes)

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	updates := map[string]interface{}{
		"team1_score":    team1Score,
		"team2_score":    team2Score,
		"rating_changes": models.RatingChanges(changes),
	}
	if err := tx.Model(&models.Match{}).
		Where("tournament_id = ? AND id = ?", tournamentID, matchID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for i := range participants {
		// The update matches no row for a soft-deleted player, so a
		// removed player's rating stays frozen at its last value.
		if err := tx.Model(&models.Player{}).
			Where("tournament_id = ? AND id = ?", tournamentID, participants[i].ID).
			Update("rating", participants[i].Rating).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := preloadParticipants(s.db.Where("tournament_id = ? AND id = ?", tournamentID, matchID)).
		First(&match).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

// GetRestingPlayers returns the players sitting out the given round.
func (s *MatchService) GetRestingPlayers(tournamentID uint, round int) ([]models.Player, error) {
	roundMatches, err := s.GetMatches(tournamentID, &round)
	if err != nil {
		return nil, err
	}
	if len(roundMatches) == 0 {
		return nil, ErrRoundNotFound
	}

	var players []models.Player
	if err := s.db.Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}

	resting := utils.GetRestingPlayers(players, roundMatches)
	if resting == nil {
		resting = []models.Player{}
	}
	return resting, nil
}
