package services

import (
	"errors"
	"log"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// roundStaleAfter is how long a fully scored round must sit untouched
// before the scheduler generates the next one.
const roundStaleAfter = 24 * time.Hour

type AutoAdvanceService struct {
	db                *gorm.DB
	tournamentService *TournamentService
}

func NewAutoAdvanceService(db *gorm.DB, tournamentService *TournamentService) *AutoAdvanceService {
	return &AutoAdvanceService{
		db:                db,
		tournamentService: tournamentService,
	}
}

// AdvanceCompletedRounds generates the next round for every ongoing
// tournament whose current round is fully scored and has been idle for
// more than 24 hours. Tournaments that dropped below four players are
// skipped.
func (s *AutoAdvanceService) AdvanceCompletedRounds() error {
	var tournaments []models.Tournament
	if err := s.db.Where("status = ? AND current_round > 0", "ongoing").Find(&tournaments).Error; err != nil {
		log.Printf("Error loading ongoing tournaments: %v", err)
		return err
	}

	for _, tournament := range tournaments {
		eligible, err := s.isRoundStale(&tournament)
		if err != nil {
			log.Printf("Error checking tournament %d: %v", tournament.ID, err)
			continue
		}
		if !eligible {
			continue
		}

		log.Printf("Auto-advancing tournament %d (round %d complete)", tournament.ID, tournament.CurrentRound)

		if _, err := s.tournamentService.AdvanceRound(tournament.ID); err != nil {
			if errors.Is(err, utils.ErrInsufficientPlayers) {
				log.Printf("Skipping tournament %d: fewer than 4 players", tournament.ID)
				continue
			}
			log.Printf("Error auto-advancing tournament %d: %v", tournament.ID, err)
			continue
		}

		log.Printf("Tournament %d advanced to round %d", tournament.ID, tournament.CurrentRound+1)
	}

	return nil
}

// GetAdvanceableCount returns how many tournaments currently qualify for
// an automatic advance.
func (s *AutoAdvanceService) GetAdvanceableCount() (int, error) {
	var tournaments []models.Tournament
	if err := s.db.Where("status = ? AND current_round > 0", "ongoing").Find(&tournaments).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, tournament := range tournaments {
		eligible, err := s.isRoundStale(&tournament)
		if err != nil {
			return 0, err
		}
		if eligible {
			count++
		}
	}

	return count, nil
}

func (s *AutoAdvanceService) isRoundStale(tournament *models.Tournament) (bool, error) {
	var matches []models.Match
	if err := s.db.Where("tournament_id = ? AND round_number = ?", tournament.ID, tournament.CurrentRound).
		Find(&matches).Error; err != nil {
		return false, err
	}
	if len(matches) == 0 {
		return false, nil
	}

	var newest time.Time
	for i := range matches {
		if !matches[i].HasResult() {
			return false, nil
		}
		if matches[i].UpdatedAt.After(newest) {
			newest = matches[i].UpdatedAt
		}
	}

	return time.Since(newest) > roundStaleAfter, nil
}
