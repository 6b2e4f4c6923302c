package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	TournamentID  uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"tournament_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Avatar        string         `gorm:"type:text" json:"avatar,omitempty"` // URL or emoji, opaque to the engine
	Rating        float64        `gorm:"default:1500" json:"rating"`
	InitialRating float64        `gorm:"default:1500" json:"initial_rating"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Player) TableName() string {
	return "players"
}

type AddPlayerRequest struct {
	Name   string   `json:"name" binding:"required"`
	Avatar string   `json:"avatar,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

type SetPlayerRatingRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}
