package model

import "time"

// Service is one of the firm's offerings. Icon is a symbolic icon name
// rendered by the frontend.
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Icon        string    `json:"icon" gorm:"size:100"`
	IsActive    bool      `json:"isActive" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
