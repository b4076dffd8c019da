package service

import (
	"errors"
	"strings"

	"github.com/thoughtsblog/internal/db"
	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment content is empty")

// InteractionService owns the per-user relations to articles: bookmarks,
// likes and comments.
type InteractionService struct {
	db *gorm.DB
}

// NewInteractionService creates an InteractionService instance.
func NewInteractionService(gdb *gorm.DB) *InteractionService {
	return &InteractionService{db: gdb}
}

// ToggleBookmark inserts or removes the (user, article) bookmark pair and
// reports the resulting state. The unique index on the pair absorbs a
// concurrent double insert.
func (s *InteractionService) ToggleBookmark(userID, articleID uint) (bool, error) {
	if err := s.ensureArticle(articleID); err != nil {
		return false, err
	}

	var existing db.Bookmark
	err := s.db.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
	if err == nil {
		if err := s.db.Unscoped().Delete(&existing).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	bookmark := db.Bookmark{UserID: userID, ArticleID: articleID}
	if err := s.db.Create(&bookmark).Error; err != nil {
		return false, err
	}
	return true, nil
}

// IsBookmarked reports whether the user saved the article.
func (s *InteractionService) IsBookmarked(userID, articleID uint) bool {
	if userID == 0 {
		return false
	}
	var bookmark db.Bookmark
	return s.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&bookmark).Error == nil
}

// BookmarkedArticles lists the articles the user saved, newest save first.
func (s *InteractionService) BookmarkedArticles(userID uint) ([]db.Article, error) {
	var bookmarks []db.Bookmark
	if err := s.db.Preload("Article.Author").Preload("Article.Category").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}

	articles := make([]db.Article, 0, len(bookmarks))
	for i := range bookmarks {
		articles = append(articles, bookmarks[i].Article)
	}
	return articles, nil
}

// ToggleLike flips the durable like row for the pair and adjusts the
// article counter inside the same transaction, so the counter and the row
// set cannot drift apart. The decrement clamps at zero. Returns the new
// state and counter value.
func (s *InteractionService) ToggleLike(userID, articleID uint) (bool, int, error) {
	if err := s.ensureArticle(articleID); err != nil {
		return false, 0, err
	}

	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing db.Like
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
		if err == nil {
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&db.Article{}).
				Where("id = ?", articleID).
				UpdateColumn("likes_count", gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END")).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&db.Like{UserID: userID, ArticleID: articleID}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&db.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		return false, 0, err
	}

	var article db.Article
	if err := s.db.Select("likes_count").First(&article, articleID).Error; err != nil {
		return liked, 0, err
	}
	return liked, article.LikesCount, nil
}

// IsLiked reports whether the user liked the article.
func (s *InteractionService) IsLiked(userID, articleID uint) bool {
	if userID == 0 {
		return false
	}
	var like db.Like
	return s.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&like).Error == nil
}

// AddComment appends a comment. Whitespace-only content is rejected before
// anything is written.
func (s *InteractionService) AddComment(userID, articleID uint, content string) (*db.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if err := s.ensureArticle(articleID); err != nil {
		return nil, err
	}

	comment := db.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsFor lists the comments of an article, most recent first.
func (s *InteractionService) CommentsFor(articleID uint) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *InteractionService) ensureArticle(articleID uint) error {
	var article db.Article
	if err := s.db.Select("id").First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}
