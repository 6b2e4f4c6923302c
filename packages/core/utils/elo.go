package utils

import (
	"math"

	"core/models"
)

// KFactor determines how strongly a single result moves ratings.
const KFactor = 32.0

// InitialRating is the default rating for new players.
const InitialRating = 1500.0

// CalculateExpectedScore returns the expected outcome for side A using the
// standard ELO formula: E_A = 1 / (1 + 10^((R_B - R_A) / 400)).
// CalculateExpectedScore(a, b) + CalculateExpectedScore(b, a) == 1.
func CalculateExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400))
}

// CalculateTeamRating returns the summed rating of a two-player team.
func CalculateTeamRating(player1, player2 models.Player) float64 {
	return player1.Rating + player2.Rating
}

// CalculateRatingChanges computes the signed rating delta for each of the
// four players of a match, keyed by player id.
//
// Each team's base delta is K * (actual - expected) over summed team
// ratings, then scaled by a dominance multiplier (1.0 for 3-2, 1.5 for
// 3-1, 2.0 for 3-0) and, when a team wins across a rating gap above 200,
// by an upset bonus of 1 + min(gap/400, 0.8). The team delta is split
// evenly between its two members. Base deltas are zero-sum at the team
// level; the multipliers are applied to both teams alike, so the final
// figures remain opposite in sign but scaled - an intentional adjustment,
// not a rounding artifact.
func CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2 models.Player, team1Score, team2Score int) map[string]float64 {
	team1Rating := CalculateTeamRating(t1p1, t1p2)
	team2Rating := CalculateTeamRating(t2p1, t2p2)

	team1Expected := CalculateExpectedScore(team1Rating, team2Rating)
	team2Expected := 1 - team1Expected

	team1Won := team1Score > team2Score
	var team1Actual, team2Actual float64
	if team1Won {
		team1Actual = 1.0
	} else {
		team2Actual = 1.0
	}

	team1Change := KFactor * (team1Actual - team1Expected)
	team2Change := KFactor * (team2Actual - team2Expected)

	// Dominance: 3-0 doubles the base delta, 3-1 adds half, 3-2 is neutral.
	setDiff := team1Score - team2Score
	if setDiff < 0 {
		setDiff = -setDiff
	}
	dominanceMultiplier := 1 + float64(setDiff-1)*0.5

	// Upset bonus when the lower-rated team wins across a gap above 200.
	ratingGap := math.Abs(team1Rating - team2Rating)
	upsetBonus := 1.0
	if ratingGap > 200 {
		weakerTeamWon := (team1Rating < team2Rating && team1Won) ||
			(team2Rating < team1Rating && !team1Won)
		if weakerTeamWon {
			upsetBonus = 1 + math.Min(ratingGap/400, 0.8)
		}
	}

	team1Change *= dominanceMultiplier * upsetBonus
	team2Change *= dominanceMultiplier * upsetBonus

	return map[string]float64{
		t1p1.ID: team1Change / 2,
		t1p2.ID: team1Change / 2,
		t2p1.ID: team2Change / 2,
		t2p2.ID: team2Change / 2,
	}
}

// ApplyRatingChanges updates player ratings in place, rounding each new
// rating to the nearest integer. Players without an entry in changes are
// left untouched.
func ApplyRatingChanges(players []models.Player, changes map[string]float64) {
	for i := range players {
		change, ok := changes[players[i].ID]
		if !ok {
			continue
		}
		players[i].Rating = math.Round(players[i].Rating + change)
	}
}
