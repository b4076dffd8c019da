package service

import (
	"errors"
	"strings"

	"github.com/thoughtsblog/internal/db"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrContentRequired  = errors.New("content is required")
	ErrNotArticleOwner  = errors.New("article belongs to another user")
)

const summaryFallbackLength = 200

// ArticleService owns article records, their counters and relations.
type ArticleService struct {
	db *gorm.DB
}

// ArticleInput represents fields accepted when writing an article.
type ArticleInput struct {
	Title      string
	Summary    string
	Content    string
	CoverURL   string
	CategoryID uint
	AuthorID   uint
	Publish    bool
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// Create persists a new article as a draft or directly published. When no
// summary is given the first 200 characters of the content are used.
func (s *ArticleService) Create(input ArticleInput) (*db.Article, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	summary := strings.TrimSpace(input.Summary)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if input.CategoryID == 0 {
		return nil, ErrCategoryRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if summary == "" {
		summary = fallbackSummary(content)
	}

	status := db.StatusDraft
	if input.Publish {
		status = db.StatusPublished
	}

	article := db.Article{
		Title:      title,
		Summary:    summary,
		Content:    content,
		CoverURL:   strings.TrimSpace(input.CoverURL),
		CategoryID: input.CategoryID,
		AuthorID:   input.AuthorID,
		Status:     status,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Get fetches an article with author and category preloaded.
func (s *ArticleService) Get(id uint) (*db.Article, error) {
	var article db.Article
	if err := s.db.Preload("Author").Preload("Category").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Publish moves a draft to published. The transition is one-way.
func (s *ArticleService) Publish(id, authorID uint) (*db.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != authorID {
		return nil, ErrNotArticleOwner
	}
	if article.IsPublished() {
		return article, nil
	}

	if err := s.db.Model(article).Update("status", db.StatusPublished).Error; err != nil {
		return nil, err
	}
	article.Status = db.StatusPublished
	return article, nil
}

// IncrementViews bumps the view counter. Every detail load counts; there
// is no per-viewer de-duplication window.
func (s *ArticleService) IncrementViews(id uint) error {
	result := s.db.Model(&db.Article{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// Suggested returns up to limit published articles excluding the given
// one. Plain exclusion plus limit, no relevance ranking.
func (s *ArticleService) Suggested(excludeID uint, limit int) ([]db.Article, error) {
	if limit <= 0 {
		limit = 3
	}
	var articles []db.Article
	if err := s.db.Preload("Author").
		Where("status = ?", db.StatusPublished).
		Where("id <> ?", excludeID).
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ByAuthor lists all articles of one author, drafts included, newest first.
func (s *ArticleService) ByAuthor(authorID uint) ([]db.Article, error) {
	var articles []db.Article
	if err := s.db.Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func fallbackSummary(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryFallbackLength {
		return content
	}
	return string(runes[:summaryFallbackLength])
}
