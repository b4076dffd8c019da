package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowOnboarding renders the interest-picking page shown after sign-up.
func (a *API) ShowOnboarding(c *gin.Context) {
	categories, err := a.interests.Categories()
	if err != nil {
		log.Printf("failed to load categories: %v", err)
	}
	a.renderHTML(c, http.StatusOK, "onboarding.html", gin.H{
		"Title":      "O que mais te interessa?",
		"Categories": categories,
	})
}

// SaveOnboarding stores the initial interest selection. Onboarding
// requires at least one category; later changes through settings do not.
func (a *API) SaveOnboarding(c *gin.Context) {
	user, _ := CurrentUser(c)

	var input struct {
		CategoryIDs []uint `json:"category_ids"`
	}
	if !bindJSON(c, &input, "Pedido inválido") {
		return
	}

	if len(input.CategoryIDs) == 0 {
		respondError(c, http.StatusBadRequest, "Selecione pelo menos um interesse")
		return
	}

	if err := a.interests.ReplaceInterests(user.ID, input.CategoryIDs); err != nil {
		log.Printf("failed to save interests: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao salvar interesses. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/feed"})
}
