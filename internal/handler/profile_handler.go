package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/service"
)

// ShowProfile renders the caller's profile with their own articles
// (drafts included) and bookmarked articles.
func (a *API) ShowProfile(c *gin.Context) {
	user, _ := CurrentUser(c)

	articles, err := a.articles.ByAuthor(user.ID)
	if err != nil {
		log.Printf("failed to load own articles: %v", err)
	}
	bookmarks, err := a.interactions.BookmarkedArticles(user.ID)
	if err != nil {
		log.Printf("failed to load bookmarks: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "profile.html", gin.H{
		"Title":     "Perfil",
		"Profile":   user,
		"Articles":  articles,
		"Bookmarks": bookmarks,
	})
}

// ShowSettings renders the profile and interest settings page.
func (a *API) ShowSettings(c *gin.Context) {
	user, _ := CurrentUser(c)

	categories, err := a.interests.Categories()
	if err != nil {
		log.Printf("failed to load categories: %v", err)
	}
	interestIDs, err := a.interests.InterestIDs(user.ID)
	if err != nil {
		log.Printf("failed to load interests: %v", err)
	}

	selected := make(map[uint]bool, len(interestIDs))
	for _, id := range interestIDs {
		selected[id] = true
	}

	a.renderHTML(c, http.StatusOK, "settings.html", gin.H{
		"Title":      "Definições",
		"Profile":    user,
		"Categories": categories,
		"Selected":   selected,
	})
}

// GetProfile returns the caller's profile and interests as JSON.
func (a *API) GetProfile(c *gin.Context) {
	user, _ := CurrentUser(c)

	interestIDs, err := a.interests.InterestIDs(user.ID)
	if err != nil {
		log.Printf("failed to load interests: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"bio":        user.Bio,
			"avatar_url": user.AvatarURL,
		},
		"interests": interestIDs,
	})
}

// UpdateProfile changes the caller's display profile.
func (a *API) UpdateProfile(c *gin.Context) {
	user, _ := CurrentUser(c)

	var input struct {
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		AvatarURL string `json:"avatar_url"`
	}
	if !bindJSON(c, &input, "Pedido inválido") {
		return
	}

	updated, err := a.profiles.Update(user.ID, service.ProfileInput{
		Name:      input.Name,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			respondError(c, http.StatusBadRequest, "O nome é obrigatório.")
			return
		}
		log.Printf("failed to update profile: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao guardar o perfil")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":         updated.ID,
			"name":       updated.Name,
			"bio":        updated.Bio,
			"avatar_url": updated.AvatarURL,
		},
	})
}

// UpdateInterests replaces the caller's interest set.
func (a *API) UpdateInterests(c *gin.Context) {
	user, _ := CurrentUser(c)

	var input struct {
		CategoryIDs []uint `json:"category_ids"`
	}
	if !bindJSON(c, &input, "Pedido inválido") {
		return
	}

	if err := a.interests.ReplaceInterests(user.ID, input.CategoryIDs); err != nil {
		log.Printf("failed to replace interests: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao salvar interesses. Tente novamente.")
		return
	}

	ids, err := a.interests.InterestIDs(user.ID)
	if err != nil {
		log.Printf("failed to reload interests: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"interests": ids})
}
