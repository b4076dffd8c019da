package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/service"
)

// ShowFeed renders the feed page for the selected tab and category. A
// query failure degrades to an empty feed, never a blocking error.
func (a *API) ShowFeed(c *gin.Context) {
	user, _ := CurrentUser(c)

	query := feedQueryFrom(c)
	if user != nil {
		query.ViewerID = user.ID
	}

	posts, err := a.feed.Compose(query)
	if err != nil {
		log.Printf("failed to compose feed: %v", err)
		posts = []service.ArticleSummary{}
	}

	categories, err := a.interests.Categories()
	if err != nil {
		log.Printf("failed to load categories: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "feed.html", gin.H{
		"Title":            "Feed",
		"Posts":            posts,
		"Categories":       categories,
		"Tab":              string(query.Tab),
		"SelectedCategory": query.CategoryID,
	})
}

// GetFeed returns the composed feed as JSON for tab/filter switches.
func (a *API) GetFeed(c *gin.Context) {
	query := feedQueryFrom(c)
	if user, ok := CurrentUser(c); ok {
		query.ViewerID = user.ID
	}

	posts, err := a.feed.Compose(query)
	if err != nil {
		log.Printf("failed to compose feed: %v", err)
		c.JSON(http.StatusOK, gin.H{"posts": []service.ArticleSummary{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetCategories returns the category reference data.
func (a *API) GetCategories(c *gin.Context) {
	categories, err := a.interests.Categories()
	if err != nil {
		log.Printf("failed to load categories: %v", err)
		respondError(c, http.StatusInternalServerError, "Erro ao carregar categorias")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func feedQueryFrom(c *gin.Context) service.FeedQuery {
	tab := service.FeedTab(c.DefaultQuery("tab", string(service.TabFeatured)))
	if tab != service.TabForYou && tab != service.TabFeatured {
		tab = service.TabFeatured
	}

	query := service.FeedQuery{Tab: tab}
	if tab == service.TabFeatured {
		query.CategoryID = parseUintQuery(c, "category")
	}
	return query
}
