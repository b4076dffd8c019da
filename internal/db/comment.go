package db

import "gorm.io/gorm"

// Comment is append-only; no edit or delete flow exists in the app.
type Comment struct {
	gorm.Model
	ArticleID uint    `gorm:"not null;index"`
	Article   Article `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint    `gorm:"not null;index"`
	User      *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Content   string  `gorm:"type:text;not null"`
}

// AuthorDisplayName resolves the commenter name with a fallback.
func (c Comment) AuthorDisplayName() string {
	if c.User == nil || c.User.Name == "" {
		return "Usuário"
	}
	return c.User.Name
}
