package db

import "gorm.io/gorm"

// Article status values. Drafts only move forward to published.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Placeholder text used when a related row is missing at read time.
const (
	UnknownAuthorName = "Autor desconhecido"
	UncategorizedName = "Sem categoria"
)

// Article is an authored post with its denormalized counters.
type Article struct {
	gorm.Model
	Title      string `gorm:"size:255;not null"`
	Summary    string `gorm:"size:500"`
	Content    string `gorm:"type:text"`
	CoverURL   string `gorm:"size:500"`
	AuthorID   uint   `gorm:"not null;index"`
	Author     *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CategoryID uint   `gorm:"index"`
	Category   *Category
	Status     string `gorm:"size:20;not null;default:'draft';index"`
	ViewsCount int    `gorm:"not null;default:0"`
	LikesCount int    `gorm:"not null;default:0"`
}

// AuthorDisplayName resolves the author relation to a display name,
// substituting the placeholder when the row is missing.
func (a Article) AuthorDisplayName() string {
	if a.Author == nil || a.Author.Name == "" {
		return UnknownAuthorName
	}
	return a.Author.Name
}

// AuthorAvatarURL resolves the author avatar, empty when missing.
func (a Article) AuthorAvatarURL() string {
	if a.Author == nil {
		return ""
	}
	return a.Author.AvatarURL
}

// CategoryDisplayName resolves the category relation to a display name,
// substituting the placeholder when the row is missing.
func (a Article) CategoryDisplayName() string {
	if a.Category == nil || a.Category.Name == "" {
		return UncategorizedName
	}
	return a.Category.Name
}

// IsPublished reports whether the article is visible in public feeds.
func (a Article) IsPublished() bool {
	return a.Status == StatusPublished
}
