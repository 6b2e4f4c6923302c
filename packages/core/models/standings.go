package models

// PlayerStats is a derived per-player aggregate over all scored matches.
// It is never persisted; standings are recomputed from players and
// matches on every request.
type PlayerStats struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	PlayerAvatar  string  `json:"player_avatar,omitempty"`
	Rating        float64 `json:"rating"`
	InitialRating float64 `json:"initial_rating"`
	RatingChange  float64 `json:"rating_change"`
	Played        int     `json:"played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	GamesWon      int     `json:"games_won"`
	GamesLost     int     `json:"games_lost"`
	GameDiff      int     `json:"game_diff"`
	Points        int     `json:"points"` // 3 per win
}

type StandingsResponse struct {
	Stats []PlayerStats `json:"stats"`
	// Podium holds the first three player ids when at least three players
	// have stats. Presentation only.
	Podium []string `json:"podium,omitempty"`
}
