package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowHome renders the public landing page. Signed-in visitors go
// straight to their feed.
func (a *API) ShowHome(c *gin.Context) {
	if _, ok := CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/feed")
		return
	}
	a.renderHTML(c, http.StatusOK, "home.html", gin.H{"Title": "Thoughts"})
}

// ShowError renders the generic error page.
func (a *API) ShowError(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "error.html", gin.H{"Error": "Algo correu mal"})
}
