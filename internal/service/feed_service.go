package service

import (
	"errors"
	"time"

	"github.com/thoughtsblog/internal/db"
	"gorm.io/gorm"
)

// FeedTab selects the filtering and ranking rule for the feed.
type FeedTab string

const (
	TabForYou   FeedTab = "for_you"
	TabFeatured FeedTab = "featured"
)

var ErrUnknownTab = errors.New("unknown feed tab")

// FeedQuery describes one feed request. CategoryID only applies to the
// featured tab; ViewerID is zero for anonymous viewers.
type FeedQuery struct {
	Tab        FeedTab
	CategoryID uint
	ViewerID   uint
}

// ArticleSummary is a feed entry denormalized with author and category
// display data at read time.
type ArticleSummary struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	CoverURL        string    `json:"cover_url"`
	CreatedAt       time.Time `json:"created_at"`
	ViewsCount      int       `json:"views_count"`
	LikesCount      int       `json:"likes_count"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL string    `json:"author_avatar_url"`
	CategoryName    string    `json:"category_name"`
}

// FeedService composes the ordered article list shown under a tab/filter
// state.
type FeedService struct {
	db *gorm.DB
}

// NewFeedService creates a FeedService instance.
func NewFeedService(gdb *gorm.DB) *FeedService {
	return &FeedService{db: gdb}
}

// Compose produces the feed for one query. Switching tab or category is a
// full recompute; nothing is cached across calls.
//
// for_you: published articles in the viewer's interest categories, newest
// first. A viewer without interests gets an empty feed, not an error.
// featured: published articles, optionally restricted to one category,
// most liked first with newest-first as the deterministic tie-break.
func (s *FeedService) Compose(q FeedQuery) ([]ArticleSummary, error) {
	switch q.Tab {
	case TabForYou:
		return s.composeForYou(q.ViewerID)
	case TabFeatured, "":
		return s.composeFeatured(q.CategoryID)
	default:
		return nil, ErrUnknownTab
	}
}

func (s *FeedService) composeForYou(viewerID uint) ([]ArticleSummary, error) {
	if viewerID == 0 {
		return []ArticleSummary{}, nil
	}

	var interestIDs []uint
	if err := s.db.Model(&db.Interest{}).
		Where("user_id = ?", viewerID).
		Pluck("category_id", &interestIDs).Error; err != nil {
		return nil, err
	}
	if len(interestIDs) == 0 {
		return []ArticleSummary{}, nil
	}

	var articles []db.Article
	if err := s.db.Preload("Author").Preload("Category").
		Where("status = ?", db.StatusPublished).
		Where("category_id IN ?", interestIDs).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return summarize(articles), nil
}

func (s *FeedService) composeFeatured(categoryID uint) ([]ArticleSummary, error) {
	query := s.db.Preload("Author").Preload("Category").
		Where("status = ?", db.StatusPublished)
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var articles []db.Article
	if err := query.
		Order("likes_count desc").
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return summarize(articles), nil
}

func summarize(articles []db.Article) []ArticleSummary {
	summaries := make([]ArticleSummary, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		summaries = append(summaries, ArticleSummary{
			ID:              a.ID,
			Title:           a.Title,
			Summary:         a.Summary,
			CoverURL:        a.CoverURL,
			CreatedAt:       a.CreatedAt,
			ViewsCount:      a.ViewsCount,
			LikesCount:      a.LikesCount,
			AuthorName:      a.AuthorDisplayName(),
			AuthorAvatarURL: a.AuthorAvatarURL(),
			CategoryName:    a.CategoryDisplayName(),
		})
	}
	return summaries
}
