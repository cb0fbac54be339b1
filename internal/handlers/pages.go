package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the static views.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// LoginPage renders the login view with no error message by default.
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"errorMessage": nil,
	})
}

// SignupPage renders the signup view.
func (h *PageHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// MainPage renders the landing view shown after login.
func (h *PageHandler) MainPage(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", gin.H{})
}

// PitcherPage renders the pitch submission view.
func (h *PageHandler) PitcherPage(c *gin.Context) {
	c.HTML(http.StatusOK, "pitcher.html", gin.H{
		"errorMessage": nil,
	})
}
