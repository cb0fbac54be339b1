package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pitcherapp/pitcher/internal/constants"
	"github.com/pitcherapp/pitcher/internal/database"
	"github.com/pitcherapp/pitcher/internal/models"
	"github.com/pitcherapp/pitcher/internal/repository"
	"github.com/pitcherapp/pitcher/internal/services"
	"github.com/pitcherapp/pitcher/web"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func newAuthRouter(t *testing.T, env authTestEnv) *gin.Engine {
	t.Helper()

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/signup", env.handler.Signup)
	r.POST("/login", env.handler.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(t, env)

	payload := map[string]string{
		"username": "newuser",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.Equal(t, "User registered successfully!", response.Message)

	var stored models.User
	require.NoError(t, env.db.Where("username = ?", "newuser").First(&stored).Error)
	require.NotEqual(t, "supersecret", stored.PasswordHash, "plaintext must never be persisted")
}

func TestAuthHandler_SignupDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(t, env)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	body, err := json.Marshal(map[string]string{
		"username": "existing",
		"password": "anothersecret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "existing").Count(&count).Error)
	require.EqualValues(t, 1, count, "a rejected signup must not create a second record")
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(t, env)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	form := url.Values{}
	form.Set("username", "existing")
	form.Set("password", "supersecret")

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Welcome to Pitcher", "expected the main view")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Username: "current-user",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.handler.CurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthRouter(t, env)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "existing", "not-the-password"},
		{"unknown user", "nobody", "supersecret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("username", tc.username)
			form.Set("password", tc.password)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, w.Body.String(), "Incorrect username or password.")
			require.NotContains(t, w.Body.String(), "Welcome to Pitcher", "main view must not render on bad credentials")
		})
	}
}
