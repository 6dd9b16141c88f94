package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/db"
	"github.com/openummah/masjidmap/internal/http/api"
	"github.com/openummah/masjidmap/internal/http/api/admin/control/packets"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/prayer"
	"github.com/openummah/masjidmap/internal/push"
)

type MosqueController struct {
	store   db.Store
	aladhan *prayer.Client
}

func NewMosqueController(store db.Store, aladhan *prayer.Client) *MosqueController {
	return &MosqueController{store: store, aladhan: aladhan}
}

// MosqueModule mounts the mosque management endpoints.
func MosqueModule(store db.Store, aladhan *prayer.Client) api.Module {
	ctl := NewMosqueController(store, aladhan)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/mosques", ctl.listMosques)
		c.POST("/mosques", ctl.createMosque)
		c.GET("/mosques/:id", ctl.getMosque)
		c.PUT("/mosques/:id", ctl.updateMosque)
		c.DELETE("/mosques/:id", ctl.deleteMosque)

		// prayer timetable
		c.PUT("/mosques/:id/timings", ctl.updateTimings)
		c.POST("/mosques/:id/timings/refresh", ctl.refreshTimings)
	})
}

func mosqueResponse(m model.Mosque) packets.MosqueResponse {
	return packets.MosqueResponse{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		City:       m.City,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Fajr:       m.Fajr,
		Dhuhr:      m.Dhuhr,
		Asr:        m.Asr,
		Maghrib:    m.Maghrib,
		Isha:       m.Isha,
		Capacity:   m.Capacity,
		Facilities: []string(m.Facilities),
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  m.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/admin/mosques
func (t *MosqueController) listMosques(ctx *gin.Context, user *model.User) (any, *api.Error) {
	all, err := t.store.ListMosques()
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
	}

	out := make([]packets.MosqueResponse, 0, len(all))
	for _, m := range all {
		out = append(out, mosqueResponse(m))
	}
	return out, nil
}

// POST /api/admin/mosques
func (t *MosqueController) createMosque(ctx *gin.Context, user *model.User) (any, *api.Error) {
	var request packets.CreateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	m, err := t.store.CreateMosque(model.Mosque{
		ID:         request.ID,
		Name:       request.Name,
		Address:    request.Address,
		City:       request.City,
		Latitude:   *request.Latitude,
		Longitude:  *request.Longitude,
		Fajr:       request.Fajr,
		Dhuhr:      request.Dhuhr,
		Asr:        request.Asr,
		Maghrib:    request.Maghrib,
		Isha:       request.Isha,
		Capacity:   request.Capacity,
		Facilities: request.Facilities,
	})
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not create mosque"}
	}

	return mosqueResponse(m), nil
}

// GET /api/admin/mosques/:id
func (t *MosqueController) getMosque(ctx *gin.Context, user *model.User) (any, *api.Error) {
	m, err := t.store.GetMosqueByID(ctx.Param("id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	return mosqueResponse(m), nil
}

// PUT /api/admin/mosques/:id
func (t *MosqueController) updateMosque(ctx *gin.Context, user *model.User) (any, *api.Error) {
	id := ctx.Param("id")
	if _, err := t.store.GetMosqueByID(id); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	var request packets.UpdateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.UpdateMosque(id, request.Name, request.Address, request.Capacity); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not update mosque"}
	}

	updated, err := t.store.GetMosqueByID(id)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load mosque"}
	}
	return mosqueResponse(updated), nil
}

// DELETE /api/admin/mosques/:id
func (t *MosqueController) deleteMosque(ctx *gin.Context, user *model.User) (any, *api.Error) {
	id := ctx.Param("id")
	if _, err := t.store.GetMosqueByID(id); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	if err := t.store.DeleteMosque(id); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not delete mosque"}
	}
	return gin.H{"deleted": id}, nil
}

// PUT /api/admin/mosques/:id/timings
func (t *MosqueController) updateTimings(ctx *gin.Context, user *model.User) (any, *api.Error) {
	id := ctx.Param("id")
	if _, err := t.store.GetMosqueByID(id); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	var request packets.UpdateTimingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.UpdateMosqueTimings(id,
		request.Fajr, request.Dhuhr, request.Asr, request.Maghrib, request.Isha); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not update timings"}
	}

	t.publishTimetable(id)

	updated, err := t.store.GetMosqueByID(id)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load mosque"}
	}
	return mosqueResponse(updated), nil
}

// POST /api/admin/mosques/:id/timings/refresh
//
// Pulls today's timings from AlAdhan for the mosque's coordinates, stores
// them and pushes the refreshed timetable to paired boards.
func (t *MosqueController) refreshTimings(ctx *gin.Context, user *model.User) (any, *api.Error) {
	id := ctx.Param("id")
	m, err := t.store.GetMosqueByID(id)
	if err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	timings, err := t.aladhan.FetchTimings(ctx.Request.Context(), m.Latitude, m.Longitude)
	if err != nil {
		log.Error().Err(err).Str("mosque", id).Msg("aladhan refresh failed")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to get prayer times"}
	}

	if err := t.store.UpdateMosqueTimings(id,
		timings.Fajr, timings.Dhuhr, timings.Asr, timings.Maghrib, timings.Isha); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not update timings"}
	}

	t.publishTimetable(id)

	updated, err := t.store.GetMosqueByID(id)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load mosque"}
	}
	return mosqueResponse(updated), nil
}

// boardTimetable renders the payload a paired board shows: the city in the
// header slot, never the full street address.
func boardTimetable(m model.Mosque) model.Timetable {
	return prayer.BuildTimetable(m, m.City, time.Now())
}

// publishTimetable is best effort: a down broker must not fail the admin
// request.
func (t *MosqueController) publishTimetable(id string) {
	m, err := t.store.GetMosqueByID(id)
	if err != nil {
		return
	}
	if err := push.PublishTimetable(boardTimetable(m)); err != nil {
		log.Warn().Err(err).Str("mosque", id).Msg("timetable push failed")
	}
}
