package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openummah/masjidmap/internal/db"
	"github.com/openummah/masjidmap/internal/http/api"
	authapi "github.com/openummah/masjidmap/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/openummah/masjidmap/internal/http/api/admin/control/endpoints"
	appapi "github.com/openummah/masjidmap/internal/http/api/app/endpoints"
	"github.com/openummah/masjidmap/internal/prayer"
	"github.com/openummah/masjidmap/internal/session"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, sessions *session.Manager, aladhan *prayer.Client) {
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
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// control modules
		adminapi.MosqueModule(store, aladhan),
		adminapi.DisplayModule(store),
		adminapi.SessionInspectModule(),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/app",
	},
		appapi.SessionModule(sessions),
	)
}
