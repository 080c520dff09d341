package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	"github.com/aircast-fm/aircast/internal/http/api/admin/auth/packets"
	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/model"
)

const sessionCookieMaxAge = int(72 * time.Hour / time.Second)

// AuthPublicModule mounts public auth endpoints (/auth/signup, /auth/login, /auth/logout)
func AuthPublicModule(sessions *middleware.SessionManager, store db.Store) api.Module {
	ctl := newAccountManager(sessions, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/signup", ctl.userSignup)
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
		c.PUBLIC_POST("/auth/logout", ctl.userLogout)
	})
}

// AuthSessionModule mounts private profile endpoints (session cookie required)
func AuthSessionModule(sessions *middleware.SessionManager, store db.Store) api.Module {
	ctl := newAccountManager(sessions, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
	})
}

type AccountManager struct {
	sessions *middleware.SessionManager
	store    db.Store
}

func newAccountManager(sessions *middleware.SessionManager, store db.Store) *AccountManager {
	return &AccountManager{sessions: sessions, store: store}
}

// POST /api/auth/signup
func (a *AccountManager) userSignup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	if existing, _ := a.store.GetUserByEmail(request.Email); existing != nil {
		log.Warn().Str("email", request.Email).Msg("signup email already registered")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	return a.startSession(ctx, userID)
}

// POST /api/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if apiErr := api.BindJSON(ctx, &request); apiErr != nil {
		return nil, apiErr
	}

	foundUser, err := a.store.GetUserByEmail(request.Email)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	return a.startSession(ctx, foundUser.ID)
}

// POST /api/auth/logout
func (a *AccountManager) userLogout(ctx *gin.Context) (any, *api.APIError) {
	if cookie, err := ctx.Cookie(middleware.SessionCookie); err == nil && cookie != "" {
		a.sessions.RevokeToken(ctx, cookie)
	}
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	return gin.H{"success": true}, nil
}

// GET /api/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// startSession issues the session token and sets the auth_token cookie the
// dashboard gate checks on every request.
func (a *AccountManager) startSession(ctx *gin.Context, userID int) (any, *api.APIError) {
	token, err := a.sessions.IssueToken(ctx, userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}
	ctx.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	return gin.H{"token": token}, nil
}
