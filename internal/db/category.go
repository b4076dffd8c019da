package db

import "gorm.io/gorm"

// Category is seeded reference data; normal users never mutate it.
type Category struct {
	gorm.Model
	Name        string `gorm:"size:80;uniqueIndex;not null"`
	Description string `gorm:"size:255"`
}
