package utils

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"core/models"
)

// MaxPairingAttempts bounds the randomized search for a round.
const MaxPairingAttempts = 100

// ErrInsufficientPlayers is returned when a round is requested with fewer
// than four players.
var ErrInsufficientPlayers = errors.New("at least 4 players are required to generate a round")

// GenerateRoundPairings builds the matches for one round.
//
// It is a stochastic local search: up to MaxPairingAttempts random
// team/match configurations are scored against the pairing heuristics
// (repeat teammates -10, repeat team-vs-team -30, rating gap above 200
// -gap/50) and the best one wins; a 0-score attempt short-circuits the
// search. With a small pool relative to the round count repeats cannot
// always be avoided - the search only minimizes the penalty over a
// bounded number of trials.
//
// The random source is injected so callers can make the search
// deterministic in tests. Returned matches carry no results and no
// tournament id; the caller owns both.
func GenerateRoundPairings(players []models.Player, previousMatches []models.Match, roundNumber int, rng *rand.Rand) ([]models.Match, error) {
	if len(players) < 4 {
		return nil, ErrInsufficientPlayers
	}

	playersForRound := selectPlayersForRound(players, previousMatches)

	var bestPairings []models.Match
	bestScore := math.Inf(-1)

	for attempt := 0; attempt < MaxPairingAttempts; attempt++ {
		teams := createBalancedTeams(playersForRound, rng)
		matches := createBalancedMatches(teams, roundNumber, rng)

		score := evaluatePairingQuality(matches, previousMatches)
		if score > bestScore {
			bestScore = score
			bestPairings = matches
		}

		// No repeats and no major imbalance: take it.
		if score == 0 {
			break
		}
	}

	return bestPairings, nil
}

// SortMatches orders matches by round, then by the numeric index parsed
// from the R{round}-M{index} id. Plain lexicographic id ordering would
// put R1-M10 before R1-M2.
func SortMatches(matches []models.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].RoundNumber != matches[j].RoundNumber {
			return matches[i].RoundNumber < matches[j].RoundNumber
		}
		return matchIndex(matches[i].ID) < matchIndex(matches[j].ID)
	})
}

func matchIndex(id string) int {
	pos := strings.LastIndexByte(id, 'M')
	if pos < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[pos+1:])
	if err != nil {
		return 0
	}
	return n
}

// GetRestingPlayers returns the players absent from every match of the
// given set.
func GetRestingPlayers(players []models.Player, matches []models.Match) []models.Player {
	playing := make(map[string]bool)
	for i := range matches {
		for _, id := range matches[i].PlayerIDs() {
			playing[id] = true
		}
	}

	var resting []models.Player
	for _, p := range players {
		if !playing[p.ID] {
			resting = append(resting, p)
		}
	}
	return resting
}

// countRestTimes counts, per player, the previous rounds in which the
// player did not appear in any match.
func countRestTimes(players []models.Player, previousMatches []models.Match) map[string]int {
	restCount := make(map[string]int, len(players))
	for _, p := range players {
		restCount[p.ID] = 0
	}

	rounds := make(map[int][]models.Match)
	for _, m := range previousMatches {
		rounds[m.RoundNumber] = append(rounds[m.RoundNumber], m)
	}

	for _, matchesInRound := range rounds {
		playersInRound := make(map[string]bool)
		for i := range matchesInRound {
			for _, id := range matchesInRound[i].PlayerIDs() {
				playersInRound[id] = true
			}
		}
		for _, p := range players {
			if !playersInRound[p.ID] {
				restCount[p.ID]++
			}
		}
	}

	return restCount
}

// selectPlayersForRound picks who plays this round. When the roster is
// not a multiple of four, the players who have rested the least sit out,
// lower rating first on ties, so rest rotates fairly.
func selectPlayersForRound(players []models.Player, previousMatches []models.Match) []models.Player {
	if len(players)%4 == 0 {
		return players
	}

	restCount := countRestTimes(players, previousMatches)

	playersNeeded := len(players) / 4 * 4
	playersToRest := len(players) - playersNeeded

	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		restI, restJ := restCount[sorted[i].ID], restCount[sorted[j].ID]
		if restI != restJ {
			return restI < restJ
		}
		return sorted[i].Rating < sorted[j].Rating
	})

	// The front of the slice has rested least and rests now.
	return sorted[playersToRest:]
}

type team struct {
	player1 models.Player
	player2 models.Player
}

func (t team) rating() float64 {
	return CalculateTeamRating(t.player1, t.player2)
}

// createBalancedTeams splits the shuffled roster into two halves and
// pairs them position-wise. The rating sort below is discarded by the
// shuffle, so the halves are effectively a second random draw rather
// than a strength split; that is the intended behavior.
func createBalancedTeams(players []models.Player, rng *rand.Rand) []team {
	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	rng.Shuffle(len(sorted), func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })

	mid := len(sorted) / 2
	strongHalf := make([]models.Player, mid)
	weakHalf := make([]models.Player, len(sorted)-mid)
	copy(strongHalf, sorted[:mid])
	copy(weakHalf, sorted[mid:])

	rng.Shuffle(len(strongHalf), func(i, j int) { strongHalf[i], strongHalf[j] = strongHalf[j], strongHalf[i] })
	rng.Shuffle(len(weakHalf), func(i, j int) { weakHalf[i], weakHalf[j] = weakHalf[j], weakHalf[i] })

	teams := make([]team, 0, mid)
	for i := 0; i < len(strongHalf); i++ {
		teams = append(teams, team{player1: strongHalf[i], player2: weakHalf[i]})
	}
	return teams
}

// createBalancedMatches sorts teams by summed rating, shuffles, and pairs
// adjacent teams into matches with R{round}-M{index} ids.
func createBalancedMatches(teams []team, roundNumber int, rng *rand.Rand) []models.Match {
	sorted := make([]team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].rating() > sorted[j].rating() })
	rng.Shuffle(len(sorted), func(i, j int) { sorted[i], sorted[j] = sorted[j], sorted[i] })

	matches := make([]models.Match, 0, len(sorted)/2)
	for i := 0; i+1 < len(sorted); i += 2 {
		t1, t2 := sorted[i], sorted[i+1]
		matches = append(matches, models.Match{
			ID:             fmt.Sprintf("R%d-M%d", roundNumber, i/2+1),
			RoundNumber:    roundNumber,
			Team1Player1ID: t1.player1.ID,
			Team1Player2ID: t1.player2.ID,
			Team2Player1ID: t2.player1.ID,
			Team2Player2ID: t2.player2.ID,
			Team1Player1:   t1.player1,
			Team1Player2:   t1.player2,
			Team2Player1:   t2.player1,
			Team2Player2:   t2.player2,
		})
	}
	return matches
}

// havePairedBefore reports whether two players have been teammates in any
// previous match.
func havePairedBefore(playerID1, playerID2 string, previousMatches []models.Match) bool {
	for i := range previousMatches {
		m := &previousMatches[i]
		inTeam1 := (m.Team1Player1ID == playerID1 || m.Team1Player2ID == playerID1) &&
			(m.Team1Player1ID == playerID2 || m.Team1Player2ID == playerID2)
		inTeam2 := (m.Team2Player1ID == playerID1 || m.Team2Player2ID == playerID1) &&
			(m.Team2Player1ID == playerID2 || m.Team2Player2ID == playerID2)
		if inTeam1 || inTeam2 {
			return true
		}
	}
	return false
}

// teamsHavePlayedBefore reports whether the exact team-vs-team pairing
// already happened, regardless of side order.
func teamsHavePlayedBefore(t1, t2 team, previousMatches []models.Match) bool {
	current1 := pairKey(t1.player1.ID, t1.player2.ID)
	current2 := pairKey(t2.player1.ID, t2.player2.ID)

	for i := range previousMatches {
		m := &previousMatches[i]
		prev1 := pairKey(m.Team1Player1ID, m.Team1Player2ID)
		prev2 := pairKey(m.Team2Player1ID, m.Team2Player2ID)
		if (prev1 == current1 && prev2 == current2) || (prev1 == current2 && prev2 == current1) {
			return true
		}
	}
	return false
}

func pairKey(id1, id2 string) string {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return id1 + "|" + id2
}

// evaluatePairingQuality scores a candidate round. 0 is perfect; repeats
// and lopsided matches push the score down.
func evaluatePairingQuality(matches []models.Match, previousMatches []models.Match) float64 {
	score := 0.0

	for i := range matches {
		m := &matches[i]

		if havePairedBefore(m.Team1Player1ID, m.Team1Player2ID, previousMatches) {
			score -= 10
		}
		if havePairedBefore(m.Team2Player1ID, m.Team2Player2ID, previousMatches) {
			score -= 10
		}

		t1 := team{player1: m.Team1Player1, player2: m.Team1Player2}
		t2 := team{player1: m.Team2Player1, player2: m.Team2Player2}
		if teamsHavePlayedBefore(t1, t2, previousMatches) {
			score -= 30
		}

		ratingDiff := math.Abs(t1.rating() - t2.rating())
		if ratingDiff > 200 {
			score -= math.Floor(ratingDiff / 50)
		}
	}

	return score
}
