package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/service"
)

// ShowWrite renders the article editor.
func (a *API) ShowWrite(c *gin.Context) {
	categories, err := a.interests.Categories()
	if err != nil {
		log.Printf("failed to load categories: %v", err)
	}
	a.renderHTML(c, http.StatusOK, "write.html", gin.H{
		"Title":      "Escrever",
		"Categories": categories,
	})
}

// CreateArticle saves a draft or publishes directly, mapping validation
// errors to the editor's inline messages.
func (a *API) CreateArticle(c *gin.Context) {
	user, _ := CurrentUser(c)

	var input struct {
		Title      string `json:"title"`
		Summary    string `json:"summary"`
		Content    string `json:"content"`
		CoverURL   string `json:"cover_url"`
		CategoryID uint   `json:"category_id"`
		Publish    bool   `json:"publish"`
	}
	if !bindJSON(c, &input, "Pedido inválido") {
		return
	}

	article, err := a.articles.Create(service.ArticleInput{
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		CoverURL:   input.CoverURL,
		CategoryID: input.CategoryID,
		AuthorID:   user.ID,
		Publish:    input.Publish,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "O título é obrigatório.")
		case errors.Is(err, service.ErrCategoryRequired):
			respondError(c, http.StatusBadRequest, "Selecione uma categoria.")
		case errors.Is(err, service.ErrContentRequired):
			respondError(c, http.StatusBadRequest, "O conteúdo é obrigatório.")
		default:
			log.Printf("failed to save article: %v", err)
			respondError(c, http.StatusInternalServerError, "Erro ao salvar o post. Tente novamente.")
		}
		return
	}

	redirect := "/profile"
	if article.IsPublished() {
		redirect = fmt.Sprintf("/article/%d", article.ID)
	}
	c.JSON(http.StatusCreated, gin.H{"id": article.ID, "status": article.Status, "redirect": redirect})
}

// PublishArticle moves one of the caller's drafts to published.
func (a *API) PublishArticle(c *gin.Context) {
	user, _ := CurrentUser(c)
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	article, err := a.articles.Publish(id, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			respondError(c, http.StatusNotFound, "Artigo não encontrado")
		case errors.Is(err, service.ErrNotArticleOwner):
			respondError(c, http.StatusForbidden, "Este artigo pertence a outro autor")
		default:
			log.Printf("failed to publish article: %v", err)
			respondError(c, http.StatusInternalServerError, "Erro ao publicar o artigo")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": article.ID, "status": article.Status})
}
