package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openummah/masjidmap/internal/http/api"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/redis"
	"github.com/openummah/masjidmap/internal/session"
)

// SessionInspectModule exposes cached screen-session snapshots for support
// tooling. Snapshots live in Redis with a TTL, so closed sessions remain
// visible for a day.
func SessionInspectModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sessions/:token", inspectSession)
	})
}

// GET /api/admin/sessions/:token
func inspectSession(ctx *gin.Context, user *model.User) (any, *api.Error) {
	snap, err := session.LoadSnapshot(ctx.Request.Context(), ctx.Param("token"))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load session"}
	}
	return snap, nil
}
