package db

import "gorm.io/gorm"

// User holds the account credentials and the public writer profile.
type User struct {
	gorm.Model
	Name      string `gorm:"size:120;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"not null"` // bcrypt hash
	Bio       string `gorm:"size:500"`
	AvatarURL string `gorm:"size:500"`
}
