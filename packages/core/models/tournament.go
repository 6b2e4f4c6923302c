package models

import (
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Slug         string         `gorm:"size:255;unique;not null" json:"slug"`
	Description  string         `gorm:"type:text" json:"description"`
	Status       string         `gorm:"size:20;not null;default:opened" json:"status"` // opened, ongoing, finished
	CurrentRound int            `gorm:"default:0" json:"current_round"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Players []Player `gorm:"foreignKey:TournamentID" json:"players,omitempty"`
	Matches []Match  `gorm:"foreignKey:TournamentID" json:"matches,omitempty"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// DTOs

type CreateTournamentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type UpdateTournamentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=ongoing finished"`
}

// Responses

type TournamentListItem struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CurrentRound int       `json:"current_round"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (TournamentListItem) TableName() string {
	return "tournaments"
}

type PaginatedTournamentsResponse struct {
	Data       []TournamentListItem `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalPages int                  `json:"totalPages"`
}
