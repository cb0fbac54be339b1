package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pitcherapp/pitcher/internal/config"
	"github.com/pitcherapp/pitcher/internal/constants"
	"github.com/pitcherapp/pitcher/internal/database"
	"github.com/pitcherapp/pitcher/internal/handlers"
	"github.com/pitcherapp/pitcher/internal/middleware"
	"github.com/pitcherapp/pitcher/internal/repository"
	"github.com/pitcherapp/pitcher/internal/services"
	"github.com/pitcherapp/pitcher/web"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode and logger
	gin.SetMode(cfg.GinMode)
	if cfg.GinMode != "release" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Gin router
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	// Setup cookie session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	pitchRepo := repository.NewPitchRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	pitchService := services.NewPitchService(pitchRepo, cfg.PhonePrefix)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	pitchHandler := handlers.NewPitchHandler(pitchService)
	pageHandler := handlers.NewPageHandler()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Pitcher is running",
		})
	})

	// Public routes
	r.GET("/", pageHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", pageHandler.SignupPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/logout", authHandler.Logout)

	// Page routes (session required, redirect to login otherwise)
	pages := r.Group("/")
	pages.Use(middleware.RequirePage())
	{
		pages.GET("/main", pageHandler.MainPage)
		pages.GET("/pitcher", pageHandler.PitcherPage)
		pages.GET("/investor", pitchHandler.Investor)
		pages.POST("/submit_pitcher", pitchHandler.Submit)
	}

	// API routes (session required, JSON 401 otherwise)
	api := r.Group("/")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/me", authHandler.CurrentUser)
		api.DELETE("/remove_pitcher/:id", pitchHandler.Remove)
		api.POST("/verify_payment/:id", pitchHandler.VerifyPayment)
	}

	shutdownTimeout, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.ShutdownTimeout).Msg("invalid SHUTDOWN_TIMEOUT")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
