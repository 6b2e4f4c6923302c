package utils

import (
	"math"
	"testing"

	"core/models"
)

func newPlayer(id string, rating float64) models.Player {
	return models.Player{ID: id, Name: id, Rating: rating, InitialRating: rating}
}

func TestCalculateExpectedScore(t *testing.T) {
	tests := []struct {
		name    string
		ratingA float64
		ratingB float64
		want    float64
	}{
		{"equal ratings", 1500, 1500, 0.5},
		{"400 points ahead", 1900, 1500, 10.0 / 11.0},
		{"400 points behind", 1500, 1900, 1.0 / 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateExpectedScore(tt.ratingA, tt.ratingB)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateExpectedScore(%v, %v) = %v, want %v", tt.ratingA, tt.ratingB, got, tt.want)
			}
		})
	}
}

func TestCalculateExpectedScoreSymmetry(t *testing.T) {
	pairs := [][2]float64{{1500, 1500}, {1200, 1800}, {3100, 2750}, {1000, 2600}}
	for _, p := range pairs {
		sum := CalculateExpectedScore(p[0], p[1]) + CalculateExpectedScore(p[1], p[0])
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("expected scores for %v and %v sum to %v, want 1", p[0], p[1], sum)
		}
	}
}

func TestCalculateTeamRating(t *testing.T) {
	got := CalculateTeamRating(newPlayer("a", 1450), newPlayer("b", 1620))
	if got != 3070 {
		t.Errorf("CalculateTeamRating = %v, want 3070", got)
	}
}

func TestCalculateRatingChangesEqualTeams(t *testing.T) {
	t1p1, t1p2 := newPlayer("a", 1500), newPlayer("b", 1500)
	t2p1, t2p2 := newPlayer("c", 1500), newPlayer("d", 1500)

	// Equal teams, 3-2: base team delta is K/2, split in half per player.
	changes := CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2, 3, 2)

	if got := changes["a"]; got != 8 {
		t.Errorf("winner delta = %v, want 8", got)
	}
	if got := changes["c"]; got != -8 {
		t.Errorf("loser delta = %v, want -8", got)
	}
	if changes["a"] != changes["b"] || changes["c"] != changes["d"] {
		t.Error("teammates should receive identical deltas")
	}
}

func TestCalculateRatingChangesDominance(t *testing.T) {
	t1p1, t1p2 := newPlayer("a", 1500), newPlayer("b", 1500)
	t2p1, t2p2 := newPlayer("c", 1500), newPlayer("d", 1500)

	tests := []struct {
		name       string
		team1Score int
		team2Score int
		want       float64
	}{
		{"3-2 neutral", 3, 2, 8},
		{"3-1 scaled by 1.5", 3, 1, 12},
		{"3-0 doubled", 3, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2, tt.team1Score, tt.team2Score)
			if got := changes["a"]; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("winner delta = %v, want %v", got, tt.want)
			}
			if got := changes["c"]; math.Abs(got+tt.want) > 1e-9 {
				t.Errorf("loser delta = %v, want %v", got, -tt.want)
			}
		})
	}
}

func TestCalculateRatingChangesUpsetBonus(t *testing.T) {
	// Gap 300, weaker team1 wins: bonus 1 + 300/400 = 1.75.
	t1p1, t1p2 := newPlayer("a", 1400), newPlayer("b", 1400)
	t2p1, t2p2 := newPlayer("c", 1550), newPlayer("d", 1550)

	withBonus := CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2, 3, 2)

	// Same gap but the stronger team wins: no bonus.
	noBonus := CalculateRatingChanges(t2p1, t2p2, t1p1, t1p2, 3, 2)

	expected := CalculateExpectedScore(2800, 3100)
	wantWith := KFactor * (1 - expected) * 1.75 / 2
	if math.Abs(withBonus["a"]-wantWith) > 1e-9 {
		t.Errorf("upset winner delta = %v, want %v", withBonus["a"], wantWith)
	}
	if -noBonus["a"] >= withBonus["a"] {
		t.Errorf("upset delta %v should exceed the mirrored no-bonus delta %v", withBonus["a"], -noBonus["a"])
	}
}

func TestCalculateRatingChangesNoBonusUnderGapThreshold(t *testing.T) {
	// Gap exactly 200 stays below the upset threshold.
	t1p1, t1p2 := newPlayer("a", 1400), newPlayer("b", 1400)
	t2p1, t2p2 := newPlayer("c", 1500), newPlayer("d", 1500)

	changes := CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2, 3, 2)

	expected := CalculateExpectedScore(2800, 3000)
	want := KFactor * (1 - expected) / 2
	if math.Abs(changes["a"]-want) > 1e-9 {
		t.Errorf("delta = %v, want %v (no upset bonus at gap 200)", changes["a"], want)
	}
}

func TestCalculateRatingChangesZeroSum(t *testing.T) {
	t1p1, t1p2 := newPlayer("a", 1320), newPlayer("b", 1680)
	t2p1, t2p2 := newPlayer("c", 1500), newPlayer("d", 1410)

	for _, scores := range [][2]int{{3, 0}, {3, 1}, {3, 2}, {0, 3}, {2, 3}} {
		changes := CalculateRatingChanges(t1p1, t1p2, t2p1, t2p2, scores[0], scores[1])
		sum := 0.0
		for _, c := range changes {
			sum += c
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("deltas for %d-%d sum to %v, want 0", scores[0], scores[1], sum)
		}
	}
}

func TestApplyRatingChanges(t *testing.T) {
	players := []models.Player{
		newPlayer("a", 1500),
		newPlayer("b", 1500),
		newPlayer("c", 1500),
	}
	changes := map[string]float64{
		"a": 8.4,
		"b": -8.6,
	}

	ApplyRatingChanges(players, changes)

	if players[0].Rating != 1508 {
		t.Errorf("player a rating = %v, want 1508", players[0].Rating)
	}
	if players[1].Rating != 1491 {
		t.Errorf("player b rating = %v, want 1491", players[1].Rating)
	}
	if players[2].Rating != 1500 {
		t.Errorf("player c without a delta should be untouched, got %v", players[2].Rating)
	}
}
