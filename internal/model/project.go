package model

import "time"

// Project is a portfolio entry shown on the public site and managed from the
// admin panel.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Location    string    `json:"location" gorm:"size:255;not null"`
	Year        string    `json:"year" gorm:"size:16;not null"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	Image       string    `json:"image" gorm:"size:512;not null"`
	IsFeatured  bool      `json:"isFeatured" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
