package authControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/signup", SignupHandler(db))
	r.POST("/api/auth/signin", SigninHandler(db))
	r.GET("/api/auth/me", middleware.ValidateToken, MeHandler(db))
	return r, db
}

func post(t *testing.T, r *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignupCreatesUserAndProfile(t *testing.T) {
	r, db := newTestRouter(t)

	w := post(t, r, "/api/auth/signup", map[string]string{
		"email":    "john@example.com",
		"password": "hunter22",
		"fullName": "John Doe",
		"userType": "alumni",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		User  struct{ ID, Email, UserType string }
		Token string
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "alumni", resp.User.UserType)
	assert.NotEmpty(t, resp.Token)

	var user models.User
	require.NoError(t, db.Where("email = ?", "john@example.com").First(&user).Error)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must not be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "John Doe", profile.FullName)
	assert.True(t, profile.IsAlumni)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	body := map[string]string{"email": "john@example.com", "password": "hunter22", "fullName": "John Doe"}
	require.Equal(t, http.StatusOK, post(t, r, "/api/auth/signup", body).Code)

	w := post(t, r, "/api/auth/signup", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestSignupDefaultsToStudent(t *testing.T) {
	r, db := newTestRouter(t)

	w := post(t, r, "/api/auth/signup", map[string]string{
		"email": "jane@example.com", "password": "hunter22", "fullName": "Jane Roe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.Equal(t, "student", user.UserType)
}

func TestSigninRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, post(t, r, "/api/auth/signup", map[string]string{
		"email": "john@example.com", "password": "hunter22", "fullName": "John Doe",
	}).Code)

	w := post(t, r, "/api/auth/signin", map[string]string{
		"email": "john@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestSigninWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, post(t, r, "/api/auth/signup", map[string]string{
		"email": "john@example.com", "password": "hunter22", "fullName": "John Doe",
	}).Code)

	w := post(t, r, "/api/auth/signin", map[string]string{
		"email": "john@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestMeReturnsUserWithProfile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := post(t, r, "/api/auth/signup", map[string]string{
		"email": "john@example.com", "password": "hunter22", "fullName": "John Doe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "John Doe", user.Profile.FullName)
}

func TestMeRejectsMissingToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSigninUnknownUser(t *testing.T) {
	r, _ := newTestRouter(t)

	w := post(t, r, "/api/auth/signin", map[string]string{
		"email": "ghost@example.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
