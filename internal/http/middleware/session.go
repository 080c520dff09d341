package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/redis"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "auth_token"

const sessionTTL = 72 * time.Hour

// SessionManager issues and validates the dashboard session cookie. Tokens
// are HS256 JWTs; when redis is configured they are also recorded there so
// logout can revoke them before expiry.
type SessionManager struct {
	secret string
	store  db.Store
}

func NewSessionManager(secret string, store db.Store) *SessionManager {
	return &SessionManager{secret: secret, store: store}
}

// IssueToken signs a token embedding userID in the "sub" claim and records
// it as a live session.
func (m *SessionManager) IssueToken(ctx *gin.Context, userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", err
	}
	redis.Set(ctx, "session:"+signed, userID, sessionTTL)
	return signed, nil
}

// RevokeToken drops the session record; the cleared cookie is handled by the caller.
func (m *SessionManager) RevokeToken(ctx *gin.Context, token string) {
	redis.Del(ctx, "session:"+token)
}

// parseToken verifies the JWT and returns the user ID.
func (m *SessionManager) parseToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid sub claim")
	}
	return int(sub), nil
}

// Middleware checks the auth_token cookie, verifies it, loads the user, and
// sets "currentUser" in context. Browsers hitting page paths without a
// session get redirected to /login; API callers get a JSON 401.
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			rejectUnauthenticated(c)
			return
		}

		userID, err := m.parseToken(cookie)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		// a missing session record means the token was revoked by logout
		if redis.Enabled() {
			if _, ok := redis.Get(c, "session:"+cookie); !ok {
				rejectUnauthenticated(c)
				return
			}
		}

		user, err := m.store.GetUserByID(userID)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
