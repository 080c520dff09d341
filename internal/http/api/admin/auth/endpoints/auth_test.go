package endpoints_test

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

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/auth/endpoints"
	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/model"
)

// userStore covers only the account methods; the embedded nil interface
// panics if anything else gets called.
type userStore struct {
	db.Store
	nextID int
	users  map[int]model.User
}

func newUserStore() *userStore {
	return &userStore{nextID: 1, users: map[int]model.User{}}
}

func (s *userStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := s.nextID
	s.nextID++
	s.users[id] = model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	return id, nil
}

func (s *userStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *userStore) GetUserByID(id int) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	out := u
	return &out, nil
}

func authTestRouter(store db.Store) (*gin.Engine, *middleware.SessionManager) {
	gin.SetMode(gin.TestMode)
	sessions := middleware.NewSessionManager("test-secret", store)

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		endpoints.AuthPublicModule(sessions, store))
	api.MountGroup(r, api.GroupConfig{Prefix: "/api", Auth: true, Sessions: sessions},
		endpoints.AuthSessionModule(sessions, store))
	return r, sessions
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", middleware.SessionCookie)
	return nil
}

func TestSignupIssuesSession(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"email":    "admin@aircast.fm",
		"password": "sup3rsecret",
		"name":     "Admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	stored, err := store.GetUserByEmail("admin@aircast.fm")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "sup3rsecret", stored.HashedPassword, "password is stored hashed")
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{"email": "admin@aircast.fm", "password": "sup3rsecret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/signup", gin.H{"email": "admin@aircast.fm", "password": "0th3rsecret"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupShortPassword(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{"email": "admin@aircast.fm", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, w.Body.String())
	assert.Contains(t, fields, "password")
}

func TestLogin(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{"email": "admin@aircast.fm", "password": "sup3rsecret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/login", gin.H{"email": "admin@aircast.fm", "password": "sup3rsecret"})
	assert.Equal(t, http.StatusOK, w.Code)
	sessionCookie(t, w)

	w = postJSON(t, r, "/api/auth/login", gin.H{"email": "admin@aircast.fm", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/auth/login", gin.H{"email": "nobody@aircast.fm", "password": "sup3rsecret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentProfile(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{
		"email":    "admin@aircast.fm",
		"password": "sup3rsecret",
		"name":     "Admin",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	req.AddCookie(cookie)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	require.Equal(t, http.StatusOK, got.Code, got.Body.String())

	var profile struct {
		ID    int     `json:"id"`
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &profile))
	assert.Equal(t, "admin@aircast.fm", profile.Email)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Admin", *profile.Name)
}

func TestCurrentProfileRequiresSession(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	store := newUserStore()
	r, _ := authTestRouter(store)

	w := postJSON(t, r, "/api/auth/signup", gin.H{"email": "admin@aircast.fm", "password": "sup3rsecret"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	require.Equal(t, http.StatusOK, got.Code)

	cleared := sessionCookie(t, got)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0, "cookie is expired")
}
