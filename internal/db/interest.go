package db

import "gorm.io/gorm"

// Interest marks a user's declared affinity for a category. The pair is
// unique; the set is replaced as a whole when the user saves preferences.
type Interest struct {
	gorm.Model
	UserID     uint     `gorm:"not null;index;uniqueIndex:idx_user_category"`
	CategoryID uint     `gorm:"not null;index;uniqueIndex:idx_user_category"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
