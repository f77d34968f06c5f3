package models

import "gorm.io/gorm"

// User represents a listener account in the system.
type User struct {
	gorm.Model
	Nickname     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	AvatarURL    string `gorm:"size:512"`
}
