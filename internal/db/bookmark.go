package db

import "gorm.io/gorm"

// Bookmark existence is the sole source of truth for "saved" state.
// The (user, article) pair is unique so a concurrent double toggle can
// only insert one row.
type Bookmark struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index;uniqueIndex:idx_bookmark_user_article"`
	ArticleID uint    `gorm:"not null;index;uniqueIndex:idx_bookmark_user_article"`
	Article   Article `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
