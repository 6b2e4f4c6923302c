package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"core/models"
	"core/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	db                *gorm.DB
	tournamentService *services.TournamentService
	playerService     *services.PlayerService
	matchService      *services.MatchService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:                db,
		tournamentService: services.NewTournamentService(db),
		playerService:     services.NewPlayerService(db),
		matchService:      services.NewMatchService(db),
	}
}

var demoPlayers = []struct {
	name   string
	avatar string
	rating float64
}{
	{"Alice Moretti", "🎾", 1680},
	{"Bruno Conti", "🔥", 1590},
	{"Carla Fontana", "⭐", 1545},
	{"Dario Ricci", "🦊", 1500},
	{"Elena Vitale", "🌊", 1500},
	{"Fabio Greco", "🎯", 1470},
	{"Giulia Ferri", "🚀", 1455},
	{"Hugo Lombardi", "🐺", 1420},
	{"Irene Caruso", "🌙", 1380},
	{"Luca Marini", "🍀", 1320},
}

// GenerateDemoTournament creates a demo tournament with 10 players and
// three rounds played through the real pairing and rating engine.
func (f *Fixtures) GenerateDemoTournament() error {
	log.Println("Starting fixtures generation...")

	tournament, err := f.tournamentService.CreateTournament(models.CreateTournamentRequest{
		Name:        "Padel Americano Demo",
		Description: "Generated demo tournament",
	})
	if err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}

	for _, p := range demoPlayers {
		rating := p.rating
		_, err := f.playerService.AddPlayer(tournament.ID, models.AddPlayerRequest{
			Name:   p.name,
			Avatar: p.avatar,
			Rating: &rating,
		})
		if err != nil {
			return fmt.Errorf("failed to add player %s: %w", p.name, err)
		}
	}
	log.Printf("Created tournament %d with %d players", tournament.ID, len(demoPlayers))

	for round := 1; round <= 3; round++ {
		matches, err := f.tournamentService.AdvanceRound(tournament.ID)
		if err != nil {
			return fmt.Errorf("failed to advance to round %d: %w", round, err)
		}
		log.Printf("Round %d: generated %d matches", round, len(matches))

		for _, match := range matches {
			team1Score, team2Score := randomScore()
			if _, err := f.matchService.RecordResult(tournament.ID, match.ID, team1Score, team2Score); err != nil {
				return fmt.Errorf("failed to record result for %s: %w", match.ID, err)
			}
		}
	}

	log.Println("Fixtures generation completed")
	return nil
}

// ClearAllData removes every tournament, player and match.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all data...")

	if err := f.db.Unscoped().Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	if err := f.db.Unscoped().Where("1 = 1").Delete(&models.Player{}).Error; err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	if err := f.db.Unscoped().Where("1 = 1").Delete(&models.Tournament{}).Error; err != nil {
		return fmt.Errorf("failed to clear tournaments: %w", err)
	}

	log.Println("All data cleared")
	return nil
}

// randomScore draws a valid best-of-five result with a random winner.
func randomScore() (int, int) {
	loserSets := rand.Intn(3)
	if rand.Intn(2) == 0 {
		return 3, loserSets
	}
	return loserSets, 3
}
