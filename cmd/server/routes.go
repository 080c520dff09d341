package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
	authapi "github.com/aircast-fm/aircast/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/aircast-fm/aircast/internal/http/api/admin/endpoints"
	stationapi "github.com/aircast-fm/aircast/internal/http/api/station/endpoints"
	"github.com/aircast-fm/aircast/internal/http/middleware"
	"github.com/aircast-fm/aircast/internal/notify"
	"github.com/aircast-fm/aircast/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	sessions *middleware.SessionManager,
	storageSystem storage.Storage,
	publisher notify.Publisher,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-API-Key",
		},
		AllowCredentials: true,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		authapi.AuthPublicModule(sessions, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:   "/api",
		Auth:     true,
		Sessions: sessions,
	},
		authapi.AuthSessionModule(sessions, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:   "/api/admin",
		Auth:     true,
		Sessions: sessions,
	},
		adminapi.ClientModule(store),
		adminapi.LocationModule(store),
		adminapi.StationModule(store),
		adminapi.VoiceModule(store),
		adminapi.PromptModule(store, publisher),
		adminapi.UploadModule(storageSystem),
	)

	// station playout integrations authenticate with a client API key
	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/station",
		Middleware: []gin.HandlerFunc{middleware.APIKeyMiddleware(store)},
	},
		stationapi.PromptFeedModule(store),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", env.UploadDir)
	}
}
