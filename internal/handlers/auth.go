package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pitcherapp/pitcher/internal/constants"
	"github.com/pitcherapp/pitcher/internal/dto"
	apierrors "github.com/pitcherapp/pitcher/internal/errors"
	"github.com/pitcherapp/pitcher/internal/middleware"
	"github.com/pitcherapp/pitcher/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user and responds with a single JSON body.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Password string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Signup(services.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			apierrors.Conflict(c, "Username already in use. Please choose a different username.")
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
		case errors.Is(err, services.ErrUsernameRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Error().Err(err).Msg("signup failed")
			apierrors.InternalError(c, "Error registering new user.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully!",
	})
}

// Login authenticates a user against the submitted form. Valid credentials
// initialize the session and render the main view; invalid ones re-render
// the login view with an error message.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"errorMessage": "Username and password are required.",
		})
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"errorMessage": "Incorrect username or password.",
			})
			return
		}
		log.Error().Err(err).Msg("login failed")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"errorMessage": "An error occurred during login.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"errorMessage": "An error occurred during login.",
		})
		return
	}

	c.HTML(http.StatusOK, "main.html", gin.H{})
}

// CurrentUser returns the authenticated user for the active session.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to load current user")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the session and sends the visitor back to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
