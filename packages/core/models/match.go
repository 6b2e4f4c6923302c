package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RatingChanges maps a player id to the signed rating delta stored when
// the result was recorded. Persisted as jsonb.
type RatingChanges map[string]float64

func (rc RatingChanges) Value() (driver.Value, error) {
	if rc == nil {
		return nil, nil
	}
	return json.Marshal(rc)
}

func (rc *RatingChanges) Scan(value interface{}) error {
	if value == nil {
		*rc = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, rc)
	case string:
		return json.Unmarshal([]byte(v), rc)
	default:
		return fmt.Errorf("unsupported type for RatingChanges: %T", value)
	}
}

// Match is one doubles match of a round. Ids follow the R{round}-M{index}
// format and are unique within a tournament. Scores stay null until a
// result is recorded; recording again overwrites the previous result.
type Match struct {
	ID             string         `gorm:"primaryKey;size:20" json:"id"`
	TournamentID   uint           `gorm:"primaryKey;autoIncrement:false" json:"tournament_id"`
	RoundNumber    int            `gorm:"not null;index" json:"round_number"`
	Team1Player1ID string         `gorm:"size:36;not null" json:"team1_player1_id"`
	Team1Player2ID string         `gorm:"size:36;not null" json:"team1_player2_id"`
	Team2Player1ID string         `gorm:"size:36;not null" json:"team2_player1_id"`
	Team2Player2ID string         `gorm:"size:36;not null" json:"team2_player2_id"`
	Team1Score     *int           `json:"team1_score,omitempty"`
	Team2Score     *int           `json:"team2_score,omitempty"`
	RatingChanges  RatingChanges  `gorm:"type:jsonb" json:"rating_changes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Team1Player1 Player `gorm:"foreignKey:Team1Player1ID;references:ID" json:"team1_player1,omitempty"`
	Team1Player2 Player `gorm:"foreignKey:Team1Player2ID;references:ID" json:"team1_player2,omitempty"`
	Team2Player1 Player `gorm:"foreignKey:Team2Player1ID;references:ID" json:"team2_player1,omitempty"`
	Team2Player2 Player `gorm:"foreignKey:Team2Player2ID;references:ID" json:"team2_player2,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// HasResult reports whether a result has been recorded for this match.
func (m *Match) HasResult() bool {
	return m.Team1Score != nil && m.Team2Score != nil
}

// Team1Won is only meaningful when HasResult is true.
func (m *Match) Team1Won() bool {
	return m.HasResult() && *m.Team1Score > *m.Team2Score
}

// PlayerIDs returns the four participating player ids.
func (m *Match) PlayerIDs() []string {
	return []string{m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID}
}

// HasPlayer reports whether the given player takes part in this match.
func (m *Match) HasPlayer(playerID string) bool {
	return m.Team1Player1ID == playerID || m.Team1Player2ID == playerID ||
		m.Team2Player1ID == playerID || m.Team2Player2ID == playerID
}

// InTeam1 reports whether the given player plays on team 1.
func (m *Match) InTeam1(playerID string) bool {
	return m.Team1Player1ID == playerID || m.Team1Player2ID == playerID
}

// ParticipantsLoaded reports whether all four player relations were
// populated. A zero-value relation means the player row is gone and the
// teams' ratings cannot be trusted.
func (m *Match) ParticipantsLoaded() bool {
	return m.Team1Player1.ID != "" && m.Team1Player2.ID != "" &&
		m.Team2Player1.ID != "" && m.Team2Player2.ID != ""
}

type RecordResultRequest struct {
	Team1Score *int `json:"team1_score" binding:"required"`
	Team2Score *int `json:"team2_score" binding:"required"`
}
