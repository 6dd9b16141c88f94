package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openummah/masjidmap/internal/db"
	"github.com/openummah/masjidmap/internal/http/api"
	"github.com/openummah/masjidmap/internal/http/api/admin/control/packets"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/push"
)

type DisplayController struct {
	store db.Store
}

// DisplayModule mounts the timetable-board management endpoints.
func DisplayModule(store db.Store) api.Module {
	ctl := &DisplayController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/mosques/:id/displays", ctl.listDisplays)
		c.POST("/mosques/:id/displays", ctl.createDisplay)
		c.POST("/displays/:display_id/pair", ctl.pairDisplay)
	})
}

func displayResponse(d model.Display) packets.DisplayResponse {
	return packets.DisplayResponse{
		ID:       d.ID,
		MosqueID: d.MosqueID,
		DeviceID: d.DeviceID,
		Name:     d.Name,
		Paired:   d.Paired,
	}
}

// GET /api/admin/mosques/:id/displays
func (t *DisplayController) listDisplays(ctx *gin.Context, user *model.User) (any, *api.Error) {
	all, err := t.store.ListDisplaysForMosque(ctx.Param("id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}

	out := make([]packets.DisplayResponse, 0, len(all))
	for _, d := range all {
		out = append(out, displayResponse(d))
	}
	return out, nil
}

// POST /api/admin/mosques/:id/displays
func (t *DisplayController) createDisplay(ctx *gin.Context, user *model.User) (any, *api.Error) {
	mosqueID := ctx.Param("id")
	if _, err := t.store.GetMosqueByID(mosqueID); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	var request packets.CreateDisplayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	d, err := t.store.CreateDisplay(mosqueID, request.Name)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not create display"}
	}
	return displayResponse(d), nil
}

// POST /api/admin/displays/:display_id/pair
//
// Pairing pushes the current timetable immediately so a freshly mounted
// board has something to show before the next refresh.
func (t *DisplayController) pairDisplay(ctx *gin.Context, user *model.User) (any, *api.Error) {
	id, err := strconv.Atoi(ctx.Param("display_id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.PairDisplayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.PairDisplay(id, request.DeviceID); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not pair display"}
	}

	// best-effort initial push
	if d, err := t.store.GetDisplayByID(id); err == nil {
		if m, err := t.store.GetMosqueByID(d.MosqueID); err == nil {
			_ = push.PublishTimetable(boardTimetable(m))
		}
	}

	return gin.H{"paired": id}, nil
}
