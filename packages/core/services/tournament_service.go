package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentService struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewTournamentServiceWithRand injects a random source, used to make the
// pairing search deterministic.
func NewTournamentServiceWithRand(db *gorm.DB, rng *rand.Rand) *TournamentService {
	return &TournamentService{db: db, rng: rng}
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.Tournament, error) {
	slug := s.generateUniqueSlug(req.Name)

	tournament := &models.Tournament{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Status:      "opened",
	}

	if err := s.db.Create(tournament).Error; err != nil {
		return nil, err
	}

	return tournament, nil
}

func (s *TournamentService) GetTournamentByID(id uint) (*models.Tournament, error) {
	var tournament models.Tournament

	result := s.db.
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("players.created_at ASC") }).
		Preload("Matches").
		First(&tournament, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, result.Error
	}

	utils.SortMatches(tournament.Matches)
	return &tournament, nil
}

func (s *TournamentService) GetAllTournaments(page, pageSize int, status *string) (*models.PaginatedTournamentsResponse, error) {
	var tournaments []models.TournamentListItem
	var total int64

	query := s.db.Model(&models.Tournament{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&tournaments).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedTournamentsResponse{
		Data:       tournaments,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateTournament applies a partial update. The slug is assigned at
// creation and stays stable across renames.
func (s *TournamentService) UpdateTournament(id uint, req models.UpdateTournamentRequest) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return tournament, nil
	}

	if err := s.db.Model(&models.Tournament{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetTournamentByID(id)
}

// AdvanceRound generates the next round for a tournament by running the
// pairing search over the current roster and match history. Nothing is
// written when validation fails.
func (s *TournamentService) AdvanceRound(tournamentID uint) ([]models.Match, error) {
	tournament, err := s.GetTournamentByID(tournamentID)
	if err != nil {
		return nil, err
	}

	roundNumber := tournament.CurrentRound + 1
	newMatches, err := utils.GenerateRoundPairings(tournament.Players, tournament.Matches, roundNumber, s.rng)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i := range newMatches {
		// The generator populates player relations for scoring; strip them
		// so gorm does not try to upsert the players.
		match := newMatches[i]
		match.TournamentID = tournamentID
		match.Team1Player1 = models.Player{}
		match.Team1Player2 = models.Player{}
		match.Team2Player1 = models.Player{}
		match.Team2Player2 = models.Player{}
		if err := tx.Create(&match).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	updates := map[string]interface{}{"current_round": roundNumber}
	if tournament.Status == "opened" {
		updates["status"] = "ongoing"
	}
	if err := tx.Model(&models.Tournament{}).Where("id = ?", tournamentID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var created []models.Match
	if err := preloadParticipants(s.db.
		Where("tournament_id = ? AND round_number = ?", tournamentID, roundNumber)).
		Find(&created).Error; err != nil {
		return nil, err
	}

	utils.SortMatches(created)
	return created, nil
}

// ResetMatches clears all matches and the round counter. Player ratings
// are kept as they are, not rolled back to their initial values.
func (s *TournamentService) ResetMatches(tournamentID uint) error {
	if _, err := s.GetTournamentByID(tournamentID); err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Hard delete: match ids like R1-M1 are reused by the next round 1.
	if err := tx.Unscoped().Where("tournament_id = ?", tournamentID).Delete(&models.Match{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Tournament{}).Where("id = ?", tournamentID).
		Updates(map[string]interface{}{"current_round": 0, "status": "opened"}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ResetTournament clears players and matches entirely, returning the
// tournament to an empty state.
func (s *TournamentService) ResetTournament(tournamentID uint) error {
	if _, err := s.GetTournamentByID(tournamentID); err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().Where("tournament_id = ?", tournamentID).Delete(&models.Match{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Unscoped().Where("tournament_id = ?", tournamentID).Delete(&models.Player{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Tournament{}).Where("id = ?", tournamentID).
		Updates(map[string]interface{}{"current_round": 0, "status": "opened"}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *TournamentService) DeleteTournament(id uint) error {
	result := s.db.Delete(&models.Tournament{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTournamentNotFound
	}
	return nil
}

func (s *TournamentService) generateSlug(name string) string {
	slug := strings.ToLower(name)

	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug = reg.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

func (s *TournamentService) generateUniqueSlug(name string) string {
	baseSlug := s.generateSlug(name)
	slug := baseSlug
	counter := 1

	for {
		var existing models.Tournament
		result := s.db.Where("slug = ?", slug).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			break
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}

	return slug
}
