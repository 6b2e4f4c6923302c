package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"core/models"
)

func makeRoster(ratings ...float64) []models.Player {
	players := make([]models.Player, 0, len(ratings))
	for i, r := range ratings {
		players = append(players, newPlayer(fmt.Sprintf("p%d", i+1), r))
	}
	return players
}

func TestGenerateRoundPairingsInsufficientPlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 2, 3} {
		players := makeRoster(make([]float64, n)...)
		_, err := GenerateRoundPairings(players, nil, 1, rng)
		if !errors.Is(err, ErrInsufficientPlayers) {
			t.Errorf("with %d players got err = %v, want ErrInsufficientPlayers", n, err)
		}
	}
}

func TestGenerateRoundPairingsFourPlayers(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620)
	rng := rand.New(rand.NewSource(42))

	matches, err := GenerateRoundPairings(players, nil, 1, rng)
	if err != nil {
		t.Fatalf("GenerateRoundPairings: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].ID != "R1-M1" {
		t.Errorf("match id = %q, want %q", matches[0].ID, "R1-M1")
	}

	seen := make(map[string]bool)
	for _, id := range matches[0].PlayerIDs() {
		if seen[id] {
			t.Errorf("player %s appears twice in the match", id)
		}
		seen[id] = true
	}
	if len(seen) != 4 {
		t.Errorf("match covers %d distinct players, want 4", len(seen))
	}
	if resting := GetRestingPlayers(players, matches); len(resting) != 0 {
		t.Errorf("got %d resting players, want 0", len(resting))
	}
}

func TestGenerateRoundPairingsRosterSizes(t *testing.T) {
	tests := []struct {
		players     int
		wantMatches int
		wantResting int
	}{
		{4, 1, 0},
		{5, 1, 1},
		{6, 1, 2},
		{7, 1, 3},
		{8, 2, 0},
		{10, 2, 2},
		{12, 3, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d players", tt.players), func(t *testing.T) {
			ratings := make([]float64, tt.players)
			for i := range ratings {
				ratings[i] = 1400 + float64(i)*25
			}
			players := makeRoster(ratings...)
			rng := rand.New(rand.NewSource(7))

			matches, err := GenerateRoundPairings(players, nil, 1, rng)
			if err != nil {
				t.Fatalf("GenerateRoundPairings: %v", err)
			}
			if len(matches) != tt.wantMatches {
				t.Errorf("got %d matches, want %d", len(matches), tt.wantMatches)
			}
			if resting := GetRestingPlayers(players, matches); len(resting) != tt.wantResting {
				t.Errorf("got %d resting players, want %d", len(resting), tt.wantResting)
			}
		})
	}
}

func TestGenerateRoundPairingsNoDuplicatePlayers(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390, 1700, 1510, 1460)
	rng := rand.New(rand.NewSource(99))

	matches, err := GenerateRoundPairings(players, nil, 1, rng)
	if err != nil {
		t.Fatalf("GenerateRoundPairings: %v", err)
	}

	seen := make(map[string]bool)
	for i := range matches {
		for _, id := range matches[i].PlayerIDs() {
			if seen[id] {
				t.Errorf("player %s appears in more than one match", id)
			}
			seen[id] = true
		}
	}
}

func TestGenerateRoundPairingsMatchIDs(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390, 1700, 1510, 1460)
	rng := rand.New(rand.NewSource(3))

	matches, err := GenerateRoundPairings(players, nil, 3, rng)
	if err != nil {
		t.Fatalf("GenerateRoundPairings: %v", err)
	}

	for i, m := range matches {
		want := fmt.Sprintf("R3-M%d", i+1)
		if m.ID != want {
			t.Errorf("match %d id = %q, want %q", i, m.ID, want)
		}
		if m.RoundNumber != 3 {
			t.Errorf("match %d round = %d, want 3", i, m.RoundNumber)
		}
	}
}

func TestGenerateRoundPairingsDeterministicWithSeed(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390, 1700, 1510, 1460)

	first, err := GenerateRoundPairings(players, nil, 1, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatalf("GenerateRoundPairings: %v", err)
	}
	second, err := GenerateRoundPairings(players, nil, 1, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatalf("GenerateRoundPairings: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed should produce identical pairings")
	}
}

func TestRestRotation(t *testing.T) {
	// 5 players, 5 rounds: each player sits out exactly once.
	players := makeRoster(1500, 1550, 1480, 1620, 1390)
	rng := rand.New(rand.NewSource(11))

	var history []models.Match
	restTotals := make(map[string]int)

	for round := 1; round <= 5; round++ {
		matches, err := GenerateRoundPairings(players, history, round, rng)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		resting := GetRestingPlayers(players, matches)
		if len(resting) != 1 {
			t.Fatalf("round %d: %d resting players, want 1", round, len(resting))
		}
		restTotals[resting[0].ID]++
		history = append(history, matches...)
	}

	for _, p := range players {
		if restTotals[p.ID] != 1 {
			t.Errorf("player %s rested %d times over 5 rounds, want 1", p.ID, restTotals[p.ID])
		}
	}
}

func TestCountRestTimes(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390)
	history := []models.Match{
		{RoundNumber: 1, Team1Player1ID: "p1", Team1Player2ID: "p2", Team2Player1ID: "p3", Team2Player2ID: "p4"},
		{RoundNumber: 2, Team1Player1ID: "p1", Team1Player2ID: "p5", Team2Player1ID: "p3", Team2Player2ID: "p4"},
	}

	got := countRestTimes(players, history)
	want := map[string]int{"p1": 0, "p2": 1, "p3": 0, "p4": 0, "p5": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("countRestTimes = %v, want %v", got, want)
	}
}

func TestSelectPlayersForRoundPrefersRestedPlayers(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390)
	// p5 already rested once; everyone else has played every round. The
	// least-rested player with the lowest rating sits out next: p3.
	history := []models.Match{
		{RoundNumber: 1, Team1Player1ID: "p1", Team1Player2ID: "p2", Team2Player1ID: "p3", Team2Player2ID: "p4"},
	}

	selected := selectPlayersForRound(players, history)
	if len(selected) != 4 {
		t.Fatalf("selected %d players, want 4", len(selected))
	}
	for _, p := range selected {
		if p.ID == "p3" {
			t.Error("p3 should rest this round")
		}
	}
}

func TestSelectPlayersForRoundFullRoster(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620)
	selected := selectPlayersForRound(players, nil)
	if len(selected) != 4 {
		t.Errorf("selected %d players, want all 4", len(selected))
	}
}

func TestHavePairedBefore(t *testing.T) {
	history := []models.Match{
		{Team1Player1ID: "p1", Team1Player2ID: "p2", Team2Player1ID: "p3", Team2Player2ID: "p4"},
	}

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"team1 pair", "p1", "p2", true},
		{"team1 pair reversed", "p2", "p1", true},
		{"team2 pair", "p3", "p4", true},
		{"opponents are not teammates", "p1", "p3", false},
		{"unknown player", "p1", "p9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := havePairedBefore(tt.a, tt.b, history); got != tt.want {
				t.Errorf("havePairedBefore(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTeamsHavePlayedBefore(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620)
	history := []models.Match{
		{Team1Player1ID: "p1", Team1Player2ID: "p2", Team2Player1ID: "p3", Team2Player2ID: "p4"},
	}

	sameTeams := teamsHavePlayedBefore(
		team{player1: players[1], player2: players[0]},
		team{player1: players[3], player2: players[2]},
		history,
	)
	if !sameTeams {
		t.Error("identical pairing with reordered sides should be recognized")
	}

	swappedSides := teamsHavePlayedBefore(
		team{player1: players[2], player2: players[3]},
		team{player1: players[0], player2: players[1]},
		history,
	)
	if !swappedSides {
		t.Error("mirror pairing should be recognized")
	}

	freshTeams := teamsHavePlayedBefore(
		team{player1: players[0], player2: players[2]},
		team{player1: players[1], player2: players[3]},
		history,
	)
	if freshTeams {
		t.Error("new team split should not be flagged as a repeat")
	}
}

func TestEvaluatePairingQuality(t *testing.T) {
	strong := []models.Player{newPlayer("s1", 1900), newPlayer("s2", 1900)}
	weak := []models.Player{newPlayer("w1", 1400), newPlayer("w2", 1400)}

	tests := []struct {
		name     string
		match    models.Match
		previous []models.Match
		want     float64
	}{
		{
			name: "fresh balanced match",
			match: models.Match{
				Team1Player1ID: "s1", Team1Player2ID: "w1",
				Team2Player1ID: "s2", Team2Player2ID: "w2",
				Team1Player1: strong[0], Team1Player2: weak[0],
				Team2Player1: strong[1], Team2Player2: weak[1],
			},
			want: 0,
		},
		{
			name: "repeat teammates on both sides plus repeat pairing",
			match: models.Match{
				Team1Player1ID: "s1", Team1Player2ID: "w1",
				Team2Player1ID: "s2", Team2Player2ID: "w2",
				Team1Player1: strong[0], Team1Player2: weak[0],
				Team2Player1: strong[1], Team2Player2: weak[1],
			},
			previous: []models.Match{{
				Team1Player1ID: "s1", Team1Player2ID: "w1",
				Team2Player1ID: "s2", Team2Player2ID: "w2",
			}},
			want: -50,
		},
		{
			name: "lopsided match",
			match: models.Match{
				Team1Player1ID: "s1", Team1Player2ID: "s2",
				Team2Player1ID: "w1", Team2Player2ID: "w2",
				Team1Player1: strong[0], Team1Player2: strong[1],
				Team2Player1: weak[0], Team2Player2: weak[1],
			},
			// Gap 1000: -floor(1000/50) = -20.
			want: -20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluatePairingQuality([]models.Match{tt.match}, tt.previous)
			if got != tt.want {
				t.Errorf("evaluatePairingQuality = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortMatches(t *testing.T) {
	matches := []models.Match{
		{ID: "R2-M1", RoundNumber: 2},
		{ID: "R1-M10", RoundNumber: 1},
		{ID: "R1-M2", RoundNumber: 1},
		{ID: "R1-M1", RoundNumber: 1},
		{ID: "R1-M11", RoundNumber: 1},
	}

	SortMatches(matches)

	gotOrder := make([]string, len(matches))
	for i, m := range matches {
		gotOrder[i] = m.ID
	}
	// Lexicographic id ordering would put R1-M10 before R1-M2.
	wantOrder := []string{"R1-M1", "R1-M2", "R1-M10", "R1-M11", "R2-M1"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("sorted order = %v, want %v", gotOrder, wantOrder)
	}
}

func TestGetRestingPlayers(t *testing.T) {
	players := makeRoster(1500, 1550, 1480, 1620, 1390)
	matches := []models.Match{
		{Team1Player1ID: "p1", Team1Player2ID: "p2", Team2Player1ID: "p3", Team2Player2ID: "p4"},
	}

	resting := GetRestingPlayers(players, matches)
	if len(resting) != 1 || resting[0].ID != "p5" {
		t.Errorf("resting players = %v, want only p5", resting)
	}

	if got := GetRestingPlayers(players, nil); len(got) != 5 {
		t.Errorf("with no matches all %d players rest, got %d", 5, len(got))
	}
}
