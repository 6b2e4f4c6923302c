package utils

import (
	"errors"
	"sort"

	"core/models"
)

// ErrInvalidScore is returned when a recorded score does not satisfy the
// best-of-five-sets-to-3 shape.
var ErrInvalidScore = errors.New("invalid score: winner must have exactly 3 sets and loser between 0 and 2")

// ValidateMatchScore checks the best-of-five-to-3 invariant: exactly one
// side at 3, the other between 0 and 2.
func ValidateMatchScore(team1Score, team2Score int) bool {
	if team1Score != 3 && team2Score != 3 {
		return false
	}
	if team1Score == 3 && team2Score == 3 {
		return false
	}
	if team1Score == 3 && (team2Score < 0 || team2Score > 2) {
		return false
	}
	if team2Score == 3 && (team1Score < 0 || team1Score > 2) {
		return false
	}
	return true
}

// ComputeStandings builds the ranked standings from the current players
// and match history. It is a pure projection: calling it twice on the
// same input yields the same ordered output.
func ComputeStandings(players []models.Player, matches []models.Match) []models.PlayerStats {
	stats := make([]models.PlayerStats, 0, len(players))
	for i := range players {
		stats = append(stats, computePlayerStats(&players[i], matches))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GameDiff != b.GameDiff {
			return a.GameDiff > b.GameDiff
		}
		if a.GamesWon != b.GamesWon {
			return a.GamesWon > b.GamesWon
		}
		// On exact ties the lower rating ranks higher: equal performance
		// against implicitly harder opposition.
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.PlayerName < b.PlayerName
	})

	return stats
}

// PodiumPlayerIDs returns the top three player ids for presentation, or
// nil when fewer than three players have stats.
func PodiumPlayerIDs(stats []models.PlayerStats) []string {
	if len(stats) < 3 {
		return nil
	}
	return []string{stats[0].PlayerID, stats[1].PlayerID, stats[2].PlayerID}
}

func computePlayerStats(player *models.Player, matches []models.Match) models.PlayerStats {
	stats := models.PlayerStats{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		PlayerAvatar:  player.Avatar,
		Rating:        player.Rating,
		InitialRating: player.InitialRating,
		RatingChange:  player.Rating - player.InitialRating,
	}

	for i := range matches {
		m := &matches[i]
		if !m.HasResult() || !m.HasPlayer(player.ID) {
			continue
		}

		stats.Played++
		if m.InTeam1(player.ID) {
			stats.GamesWon += *m.Team1Score
			stats.GamesLost += *m.Team2Score
			if m.Team1Won() {
				stats.Wins++
			} else {
				stats.Losses++
			}
		} else {
			stats.GamesWon += *m.Team2Score
			stats.GamesLost += *m.Team1Score
			if m.Team1Won() {
				stats.Losses++
			} else {
				stats.Wins++
			}
		}
	}

	stats.GameDiff = stats.GamesWon - stats.GamesLost
	stats.Points = stats.Wins * 3
	return stats
}
