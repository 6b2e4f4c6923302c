package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"

	"core/models"

	"gorm.io/gorm"
)

type ExportService struct {
	db               *gorm.DB
	standingsService *StandingsService
	matchService     *MatchService
}

func NewExportService(db *gorm.DB, standingsService *StandingsService, matchService *MatchService) *ExportService {
	return &ExportService{
		db:               db,
		standingsService: standingsService,
		matchService:     matchService,
	}
}

// ExportTournamentCSV renders the standings and the full match history as
// a single CSV document, one section per block.
func (s *ExportService) ExportTournamentCSV(tournamentID uint) ([]byte, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	standings, err := s.standingsService.GetStandings(tournamentID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchService.GetMatches(tournamentID, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{fmt.Sprintf("Tournament: %s", tournament.Name)}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"=== STANDINGS ==="}); err != nil {
		return nil, err
	}
	if err := writeStandingsRows(w, standings.Stats); err != nil {
		return nil, err
	}

	if err := w.Write([]string{"=== MATCHES ==="}); err != nil {
		return nil, err
	}
	if err := writeMatchRows(w, matches); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeStandingsRows(w *csv.Writer, stats []models.PlayerStats) error {
	header := []string{"Pos", "Name", "Rating", "Rating Change", "P", "W", "L", "GW", "GL", "Diff", "Points"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, stat := range stats {
		row := []string{
			fmt.Sprintf("%d", i+1),
			stat.PlayerName,
			fmt.Sprintf("%.0f", stat.Rating),
			signedInt(stat.RatingChange),
			fmt.Sprintf("%d", stat.Played),
			fmt.Sprintf("%d", stat.Wins),
			fmt.Sprintf("%d", stat.Losses),
			fmt.Sprintf("%d", stat.GamesWon),
			fmt.Sprintf("%d", stat.GamesLost),
			signedInt(float64(stat.GameDiff)),
			fmt.Sprintf("%d", stat.Points),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeMatchRows(w *csv.Writer, matches []models.Match) error {
	header := []string{"Match ID", "Round", "Team 1 P1", "Team 1 P2", "Team 2 P1", "Team 2 P2", "Result", "Rating Changes"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range matches {
		m := &matches[i]

		result := "Not played"
		if m.HasResult() {
			result = fmt.Sprintf("%d-%d", *m.Team1Score, *m.Team2Score)
		}

		changes := ""
		for _, p := range []models.Player{m.Team1Player1, m.Team1Player2, m.Team2Player1, m.Team2Player2} {
			delta, ok := m.RatingChanges[p.ID]
			if !ok {
				continue
			}
			if changes != "" {
				changes += "; "
			}
			changes += fmt.Sprintf("%s: %s", p.Name, signedInt(delta))
		}

		row := []string{
			m.ID,
			fmt.Sprintf("%d", m.RoundNumber),
			m.Team1Player1.Name,
			m.Team1Player2.Name,
			m.Team2Player1.Name,
			m.Team2Player2.Name,
			result,
			changes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func signedInt(v float64) string {
	rounded := int(math.Round(v))
	if rounded >= 0 {
		return fmt.Sprintf("+%d", rounded)
	}
	return fmt.Sprintf("%d", rounded)
}
