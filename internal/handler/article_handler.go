package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/thoughtsblog/internal/db"
	"github.com/thoughtsblog/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type commentView struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AvatarURL  string    `json:"avatar_url"`
}

type suggestedView struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	CoverURL   string `json:"cover_url"`
	AuthorName string `json:"author_name"`
}

// ShowArticle assembles the article detail page: the article with
// denormalized author and category, the comment list, up to three
// suggestions, the viewer's interaction state, and one unconditional view
// increment per load.
func (a *API) ShowArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{"Error": "Artigo não encontrado"})
		return
	}

	article, err := a.articles.Get(id)
	if err != nil {
		if !errors.Is(err, service.ErrArticleNotFound) {
			log.Printf("failed to load article %d: %v", id, err)
		}
		a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{"Error": "Artigo não encontrado"})
		return
	}

	if err := a.articles.IncrementViews(id); err != nil {
		log.Printf("failed to increment views for article %d: %v", id, err)
	} else {
		article.ViewsCount++
	}

	comments, err := a.interactions.CommentsFor(id)
	if err != nil {
		log.Printf("failed to load comments for article %d: %v", id, err)
	}

	suggested, err := a.articles.Suggested(id, 3)
	if err != nil {
		log.Printf("failed to load suggestions for article %d: %v", id, err)
	}

	var isBookmarked, isLiked bool
	if user, ok := CurrentUser(c); ok {
		isBookmarked = a.interactions.IsBookmarked(user.ID, id)
		isLiked = a.interactions.IsLiked(user.ID, id)
	}

	a.renderHTML(c, http.StatusOK, "article.html", gin.H{
		"Title":        article.Title,
		"Article":      article,
		"ContentHTML":  renderMarkdown(article.Content),
		"AuthorName":   article.AuthorDisplayName(),
		"AuthorAvatar": article.AuthorAvatarURL(),
		"AuthorBio":    authorBio(article),
		"CategoryName": article.CategoryDisplayName(),
		"Comments":     commentViews(comments),
		"Suggested":    suggestedViews(suggested),
		"IsBookmarked": isBookmarked,
		"IsLiked":      isLiked,
	})
}

// ToggleLike flips the viewer's like and returns the new state and counter.
func (a *API) ToggleLike(c *gin.Context) {
	user, _ := CurrentUser(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	liked, count, err := a.interactions.ToggleLike(user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "Artigo não encontrado")
			return
		}
		log.Printf("failed to toggle like: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao registar o gosto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes_count": count})
}

// ToggleBookmark flips the viewer's saved state for the article.
func (a *API) ToggleBookmark(c *gin.Context) {
	user, _ := CurrentUser(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	bookmarked, err := a.interactions.ToggleBookmark(user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "Artigo não encontrado")
			return
		}
		log.Printf("failed to toggle bookmark: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao guardar o artigo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// GetComments returns the article's comments, most recent first.
func (a *API) GetComments(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := a.interactions.CommentsFor(id)
	if err != nil {
		log.Printf("failed to load comments: %v", err)
		c.JSON(http.StatusOK, gin.H{"comments": []commentView{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": commentViews(comments)})
}

// CreateComment appends a comment and returns the reloaded list.
func (a *API) CreateComment(c *gin.Context) {
	user, _ := CurrentUser(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if !bindJSON(c, &input, "Comentário inválido") {
		return
	}

	if _, err := a.interactions.AddComment(user.ID, id, input.Content); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			respondError(c, http.StatusBadRequest, "O comentário não pode estar vazio")
		case errors.Is(err, service.ErrArticleNotFound):
			respondError(c, http.StatusNotFound, "Artigo não encontrado")
		default:
			log.Printf("failed to create comment: %v", err)
			respondError(c, http.StatusInternalServerError, "Erro ao publicar o comentário")
		}
		return
	}

	comments, err := a.interactions.CommentsFor(id)
	if err != nil {
		log.Printf("failed to reload comments: %v", err)
	}
	c.JSON(http.StatusCreated, gin.H{"comments": commentViews(comments)})
}

// GetSuggested returns up to three published articles excluding this one.
func (a *API) GetSuggested(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	suggested, err := a.articles.Suggested(id, 3)
	if err != nil {
		log.Printf("failed to load suggestions: %v", err)
		c.JSON(http.StatusOK, gin.H{"articles": []suggestedView{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": suggestedViews(suggested)})
}

func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		log.Printf("failed to render markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func authorBio(article *db.Article) string {
	if article.Author == nil {
		return ""
	}
	return article.Author.Bio
}

func commentViews(comments []db.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for i := range comments {
		comment := &comments[i]
		view := commentView{
			ID:         comment.ID,
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt,
			AuthorName: comment.AuthorDisplayName(),
		}
		if comment.User != nil {
			view.AvatarURL = comment.User.AvatarURL
		}
		views = append(views, view)
	}
	return views
}

func suggestedViews(articles []db.Article) []suggestedView {
	views := make([]suggestedView, 0, len(articles))
	for i := range articles {
		article := &articles[i]
		views = append(views, suggestedView{
			ID:         article.ID,
			Title:      article.Title,
			Summary:    article.Summary,
			CoverURL:   article.CoverURL,
			AuthorName: article.AuthorDisplayName(),
		})
	}
	return views
}
