package model

import "time"

// TeamMember is a staff profile shown on the about page.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Bio       string    `json:"bio" gorm:"type:text"`
	Image     string    `json:"image" gorm:"size:512"`
	Email     string    `json:"email" gorm:"size:255"`
	Linkedin  string    `json:"linkedin" gorm:"size:512"`
	IsActive  bool      `json:"isActive" gorm:"index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
