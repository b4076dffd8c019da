package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/service"
)

// ShowLogin renders the sign-in page.
func (a *API) ShowLogin(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Entrar"})
}

// Login verifies credentials and opens a session.
func (a *API) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := a.auth.Authenticate(email, password)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Email ou palavra-passe incorretos"
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("login failed: %v", err)
			status = http.StatusInternalServerError
			message = "Erro ao iniciar sessão. Tente novamente."
		}
		a.renderHTML(c, status, "auth/login.html", gin.H{
			"Title": "Entrar",
			"Error": message,
			"Email": email,
		})
		return
	}

	if err := SetSessionUser(c, user.ID); err != nil {
		log.Printf("failed to save session: %v", err)
	}
	c.Redirect(http.StatusFound, "/feed")
}

// ShowSignUp renders the registration page.
func (a *API) ShowSignUp(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "auth/signup.html", gin.H{"Title": "Criar conta"})
}

// SignUp validates the form and registers the account. Validation failures
// never reach the store; the password fields are cleared on re-render.
func (a *API) SignUp(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	rerender := func(status int, message string) {
		a.renderHTML(c, status, "auth/signup.html", gin.H{
			"Title": "Criar conta",
			"Error": message,
			"Name":  name,
			"Email": email,
		})
	}

	if password != confirm {
		rerender(http.StatusBadRequest, "As palavras-passe são diferentes, faça a alteração")
		return
	}
	if name == "" || email == "" || password == "" {
		rerender(http.StatusBadRequest, "Preencha os campos vazios")
		return
	}

	user, err := a.auth.SignUp(name, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			rerender(http.StatusConflict, "Este email já está registado")
			return
		}
		log.Printf("sign-up failed: %v", err)
		rerender(http.StatusInternalServerError, "Ocorreu um erro. Tente novamente.")
		return
	}

	if err := SetSessionUser(c, user.ID); err != nil {
		log.Printf("failed to save session: %v", err)
	}
	c.Redirect(http.StatusFound, "/auth/check-email")
}

// ShowCheckEmail renders the post-registration confirmation page.
func (a *API) ShowCheckEmail(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "auth/check_email.html", gin.H{"Title": "Verifique o seu email"})
}

// Logout closes the session.
func (a *API) Logout(c *gin.Context) {
	if err := ClearSession(c); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
