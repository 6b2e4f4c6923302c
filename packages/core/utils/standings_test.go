package utils

import (
	"reflect"
	"testing"

	"core/models"
)

func intPtr(v int) *int { return &v }

func scoredMatch(round int, t1p1, t1p2, t2p1, t2p2 string, s1, s2 int) models.Match {
	return models.Match{
		RoundNumber:    round,
		Team1Player1ID: t1p1,
		Team1Player2ID: t1p2,
		Team2Player1ID: t2p1,
		Team2Player2ID: t2p2,
		Team1Score:     intPtr(s1),
		Team2Score:     intPtr(s2),
	}
}

func TestValidateMatchScore(t *testing.T) {
	tests := []struct {
		name   string
		score1 int
		score2 int
		want   bool
	}{
		{"3-0", 3, 0, true},
		{"3-1", 3, 1, true},
		{"3-2", 3, 2, true},
		{"0-3", 0, 3, true},
		{"1-3", 1, 3, true},
		{"2-3", 2, 3, true},
		{"no winner 2-2", 2, 2, false},
		{"no winner 0-0", 0, 0, false},
		{"double winner 3-3", 3, 3, false},
		{"winner above 3", 4, 1, false},
		{"loser above 2", 3, 4, false},
		{"negative loser", 3, -1, false},
		{"negative winner", -1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMatchScore(tt.score1, tt.score2); got != tt.want {
				t.Errorf("ValidateMatchScore(%d, %d) = %v, want %v", tt.score1, tt.score2, got, tt.want)
			}
		})
	}
}

func TestComputePlayerStats(t *testing.T) {
	player := newPlayer("p1", 1532)
	player.InitialRating = 1500
	matches := []models.Match{
		scoredMatch(1, "p1", "p2", "p3", "p4", 3, 1),
		scoredMatch(2, "p3", "p4", "p1", "p2", 3, 2),
		// Unscored match is ignored.
		{RoundNumber: 3, Team1Player1ID: "p1", Team1Player2ID: "p3", Team2Player1ID: "p2", Team2Player2ID: "p4"},
		// Match without p1 is ignored.
		scoredMatch(3, "p2", "p3", "p4", "p5", 3, 0),
	}

	got := computePlayerStats(&player, matches)

	want := models.PlayerStats{
		PlayerID:      "p1",
		PlayerName:    "p1",
		Rating:        1532,
		InitialRating: 1500,
		RatingChange:  32,
		Played:        2,
		Wins:          1,
		Losses:        1,
		GamesWon:      5,
		GamesLost:     4,
		GameDiff:      1,
		Points:        3,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("computePlayerStats = %+v, want %+v", got, want)
	}
}

func TestComputeStandingsOrdering(t *testing.T) {
	players := []models.Player{
		newPlayer("p1", 1510),
		newPlayer("p2", 1520),
		newPlayer("p3", 1490),
		newPlayer("p4", 1480),
	}
	matches := []models.Match{
		scoredMatch(1, "p1", "p3", "p2", "p4", 3, 2), // p1/p3 win 3-2
		scoredMatch(2, "p2", "p3", "p1", "p4", 3, 0), // p2/p3 win 3-0
	}

	stats := ComputeStandings(players, matches)

	gotOrder := make([]string, len(stats))
	for i, s := range stats {
		gotOrder[i] = s.PlayerID
	}
	// p3 wins twice (6 points), p2 and p1 tie on 3 points and split on
	// game diff (+2 vs -2), p4 loses both.
	wantOrder := []string{"p3", "p2", "p1", "p4"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("standings order = %v, want %v", gotOrder, wantOrder)
	}

	if stats[0].Points != 6 || stats[0].GameDiff != 4 {
		t.Errorf("leader stats = %+v, want 6 points and +4 game diff", stats[0])
	}
}

func TestComputeStandingsPointsBeatGameDiff(t *testing.T) {
	players := []models.Player{
		newPlayer("p1", 1500),
		newPlayer("p2", 1500),
		newPlayer("p3", 1500),
		newPlayer("p4", 1500),
		newPlayer("p5", 1500),
		newPlayer("p6", 1500),
		newPlayer("p7", 1500),
		newPlayer("p8", 1500),
	}
	matches := []models.Match{
		// p1 takes two narrow wins, p2 one crushing win: points decide.
		scoredMatch(1, "p1", "p3", "p5", "p6", 3, 2),
		scoredMatch(2, "p1", "p4", "p7", "p8", 3, 2),
		scoredMatch(3, "p2", "p5", "p6", "p7", 3, 0),
	}

	stats := ComputeStandings(players, matches)
	if stats[0].PlayerID != "p1" {
		t.Errorf("leader = %s, want p1 (6 points beat +3 game diff)", stats[0].PlayerID)
	}
	if stats[1].PlayerID != "p2" {
		t.Errorf("runner-up = %s, want p2", stats[1].PlayerID)
	}
}

func TestComputeStandingsGamesWonTieBreak(t *testing.T) {
	// p1 and p2 both sit on 9 points with a +5 game difference; p2 ranks
	// higher on total games won (11 vs 9). p3 trails on points despite the
	// best game difference. Partners and opponents outside the roster are
	// not ranked.
	players := []models.Player{
		newPlayer("p1", 1500),
		newPlayer("p2", 1500),
		newPlayer("p3", 1500),
	}
	matches := []models.Match{
		// p1: three wins, 9 games won, 4 lost.
		scoredMatch(1, "p1", "x1", "x2", "x3", 3, 1),
		scoredMatch(2, "p1", "x2", "x3", "x4", 3, 1),
		scoredMatch(3, "p1", "x3", "x1", "x4", 3, 2),
		// p2: three sweeps and two losses, 11 games won, 6 lost.
		scoredMatch(1, "p2", "x5", "x6", "x7", 3, 0),
		scoredMatch(2, "p2", "x6", "x7", "x8", 3, 0),
		scoredMatch(3, "p2", "x7", "x5", "x8", 3, 0),
		scoredMatch(4, "x5", "x6", "p2", "x8", 3, 2),
		scoredMatch(5, "x6", "x7", "p2", "x5", 3, 0),
		// p3: two sweeps, 6 points.
		scoredMatch(1, "p3", "x9", "x10", "x11", 3, 0),
		scoredMatch(2, "p3", "x10", "x9", "x11", 3, 0),
	}

	stats := ComputeStandings(players, matches)

	gotOrder := make([]string, len(stats))
	for i, s := range stats {
		gotOrder[i] = s.PlayerID
	}
	wantOrder := []string{"p2", "p1", "p3"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("standings order = %v, want %v", gotOrder, wantOrder)
	}

	if stats[0].Points != stats[1].Points || stats[0].GameDiff != stats[1].GameDiff {
		t.Errorf("p2 (%+v) and p1 (%+v) should tie on points and game diff", stats[0], stats[1])
	}
	if stats[0].GamesWon != 11 || stats[1].GamesWon != 9 {
		t.Errorf("games won = %d vs %d, want 11 vs 9", stats[0].GamesWon, stats[1].GamesWon)
	}
}

func TestComputeStandingsRatingTieBreakAscending(t *testing.T) {
	// Identical records: the lower-rated player ranks higher.
	players := []models.Player{
		newPlayer("p1", 1600),
		newPlayer("p2", 1450),
	}

	stats := ComputeStandings(players, nil)
	if stats[0].PlayerID != "p2" {
		t.Errorf("leader = %s, want lower-rated p2 on a full tie", stats[0].PlayerID)
	}
}

func TestComputeStandingsNameTieBreak(t *testing.T) {
	players := []models.Player{
		{ID: "z9", Name: "Zoe", Rating: 1500, InitialRating: 1500},
		{ID: "a1", Name: "Alice", Rating: 1500, InitialRating: 1500},
	}

	stats := ComputeStandings(players, nil)
	if stats[0].PlayerName != "Alice" {
		t.Errorf("leader = %s, want Alice on name tie-break", stats[0].PlayerName)
	}
}

func TestComputeStandingsIdempotent(t *testing.T) {
	players := []models.Player{
		newPlayer("p1", 1510),
		newPlayer("p2", 1520),
		newPlayer("p3", 1490),
		newPlayer("p4", 1480),
	}
	matches := []models.Match{
		scoredMatch(1, "p1", "p3", "p2", "p4", 3, 2),
		scoredMatch(2, "p2", "p3", "p1", "p4", 3, 0),
	}

	first := ComputeStandings(players, matches)
	second := ComputeStandings(players, matches)
	if !reflect.DeepEqual(first, second) {
		t.Error("standings should be a pure projection of players and matches")
	}
}

func TestPodiumPlayerIDs(t *testing.T) {
	stats := []models.PlayerStats{
		{PlayerID: "p3"},
		{PlayerID: "p1"},
		{PlayerID: "p2"},
		{PlayerID: "p4"},
	}

	if got := PodiumPlayerIDs(stats); !reflect.DeepEqual(got, []string{"p3", "p1", "p2"}) {
		t.Errorf("podium = %v, want top three in order", got)
	}
	if got := PodiumPlayerIDs(stats[:2]); got != nil {
		t.Errorf("podium with two players = %v, want nil", got)
	}
	if got := PodiumPlayerIDs(nil); got != nil {
		t.Errorf("podium with no stats = %v, want nil", got)
	}
}
