package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeduel/server/config"
	"github.com/pokeduel/server/testutil"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	h := NewAuthHandler(db, c, config.SecurityConfig{
		JWTSecret: "test-secret",
		JWTTTLH:   time.Hour,
	})
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_AutoRegistersAndReturnsToken(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "misty", "starmie123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token     string `json:"token"`
		AccountID int64  `json:"account_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.AccountID)

	// Same credentials log into the same account.
	w = postLogin(t, r, "misty", "starmie123")
	require.Equal(t, http.StatusOK, w.Code)
	var again struct {
		AccountID int64 `json:"account_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, resp.AccountID, again.AccountID)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	require.Equal(t, http.StatusOK, postLogin(t, r, "brock", "onix4ever").Code)
	assert.Equal(t, http.StatusUnauthorized, postLogin(t, r, "brock", "wrong-pass").Code)
}

func TestLogin_Validation(t *testing.T) {
	r := newAuthRouter(t)

	assert.Equal(t, http.StatusBadRequest, postLogin(t, r, "", "password").Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(t, r, "ash", "p").Code)
}

func TestLogout_DropsSession(t *testing.T) {
	r := newAuthRouter(t)

	w := postLogin(t, r, "gary", "eevee1234")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Missing token is rejected.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
