package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/redis"
)

const apiKeyCacheTTL = 5 * time.Minute

// APIKeyMiddleware authenticates station-facing requests by the client API
// key in the X-API-Key header. Key lookups are cached in redis; the cache
// entry is dropped when a new key is generated for the client.
func APIKeyMiddleware(store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing api key"})
			return
		}

		if cached, ok := redis.Get(c, "apikey:"+key); ok {
			if id, err := strconv.Atoi(cached); err == nil {
				client, err := store.GetClientByID(id)
				if err == nil && client.Status == "active" {
					c.Set("currentClient", &client)
					c.Next()
					return
				}
			}
		}

		client, err := store.GetClientByAPIKey(key)
		if err != nil {
			log.Warn().Msg("rejected request with unknown api key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		if client.Status != "active" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "client is inactive"})
			return
		}

		redis.Set(c, "apikey:"+key, client.ID, apiKeyCacheTTL)
		c.Set("currentClient", &client)
		c.Next()
	}
}
