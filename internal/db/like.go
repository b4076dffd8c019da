package db

import "gorm.io/gorm"

// Like durably records who liked what, mirroring Bookmark, so the liked
// state survives a reload. The article counter is maintained in the same
// transaction as this row.
type Like struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index;uniqueIndex:idx_like_user_article"`
	ArticleID uint    `gorm:"not null;index;uniqueIndex:idx_like_user_article"`
	Article   Article `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
