package endpoints

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/http/api"
	"github.com/openummah/masjidmap/internal/http/api/app/packets"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/session"
)

type SessionController struct {
	sessions *session.Manager
}

// SessionModule mounts the screen-session endpoints used by the mobile
// shell.
func SessionModule(sessions *session.Manager) api.Module {
	ctl := &SessionController{sessions: sessions}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/sessions", ctl.createSession)
		c.PUBLIC_GET("/sessions/:token", ctl.getSession)
		c.PUBLIC_POST("/sessions/:token/position", ctl.reportPosition)
		c.PUBLIC_POST("/sessions/:token/position/failed", ctl.reportFailure)
		c.PUBLIC_GET("/sessions/:token/nearby", ctl.listNearby)
		c.PUBLIC_POST("/sessions/:token/selection", ctl.selectMosque)
		c.PUBLIC_DELETE("/sessions/:token", ctl.closeSession)

		c.RAW(http.MethodGet, "/sessions/:token/sheet", SheetSocket(sessions))
	})
}

func nearbyEntry(e session.Entry) packets.NearbyEntry {
	out := packets.NearbyEntry{
		ID:         e.Mosque.ID,
		Name:       e.Mosque.Name,
		Address:    e.Mosque.Address,
		Latitude:   e.Mosque.Latitude,
		Longitude:  e.Mosque.Longitude,
		Fajr:       e.Mosque.Fajr,
		Dhuhr:      e.Mosque.Dhuhr,
		Asr:        e.Mosque.Asr,
		Maghrib:    e.Mosque.Maghrib,
		Isha:       e.Mosque.Isha,
		Capacity:   e.Mosque.Capacity,
		Facilities: []string(e.Mosque.Facilities),
	}
	if e.DistanceKm != nil {
		out.DistanceKm = e.DistanceKm
		out.DistanceLabel = fmt.Sprintf("%.1f km away", *e.DistanceKm)
	}
	return out
}

func (t *SessionController) sessionResponse(s *session.Session) packets.SessionResponse {
	offset, resting, expanded, opacity := s.Sheet()
	offsets := s.SheetOffsets()

	resp := packets.SessionResponse{
		Token: s.Token(),
		Phase: string(s.Phase()),
		Sheet: packets.SheetState{
			Offset:      offset,
			Resting:     resting.String(),
			Expanded:    expanded,
			ListOpacity: opacity,
			OffsetMax:   offsets.Max,
			OffsetMid:   offsets.Mid,
			OffsetMin:   offsets.Min,
		},
		MosqueCount: len(s.Nearby()),
	}

	if s.Phase() == session.PhaseError {
		resp.ErrorMessage = session.LocationErrorMessage
	}
	if selected, err := s.Selected(); err == nil {
		e := nearbyEntry(selected)
		resp.Selected = &e
	}
	return resp
}

// POST /api/app/sessions
func (t *SessionController) createSession(ctx *gin.Context) (any, *api.Error) {
	s := t.sessions.Create()
	log.Info().Str("token", s.Token()).Msg("screen session opened")
	return t.sessionResponse(s), nil
}

// DELETE /api/app/sessions/:token
//
// Called when the screen is dismissed. Frees the in-memory session and drops
// the cached snapshot.
func (t *SessionController) closeSession(ctx *gin.Context) (any, *api.Error) {
	token := ctx.Param("token")
	if _, ok := t.sessions.Get(token); !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}

	t.sessions.Remove(token)
	log.Info().Str("token", token).Msg("screen session closed")
	return gin.H{"closed": token}, nil
}

// GET /api/app/sessions/:token
func (t *SessionController) getSession(ctx *gin.Context) (any, *api.Error) {
	s, ok := t.sessions.Get(ctx.Param("token"))
	if !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}
	return t.sessionResponse(s), nil
}

// POST /api/app/sessions/:token/position
//
// Called once after the permission flow succeeds. Orders the list by
// distance and selects the nearest mosque.
func (t *SessionController) reportPosition(ctx *gin.Context) (any, *api.Error) {
	s, ok := t.sessions.Get(ctx.Param("token"))
	if !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}

	var request packets.ReportPositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.SetPosition(model.Coordinate{Lat: *request.Lat, Lon: *request.Lon}); err != nil {
		return nil, &api.Error{Code: http.StatusConflict, Message: "session already failed"}
	}
	t.sessions.Touch(s)

	return t.sessionResponse(s), nil
}

// POST /api/app/sessions/:token/position/failed
//
// Permission denial and fix failure land on the same terminal state; the
// kind is recorded for logs only.
func (t *SessionController) reportFailure(ctx *gin.Context) (any, *api.Error) {
	s, ok := t.sessions.Get(ctx.Param("token"))
	if !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}

	var request packets.ReportFailureRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	s.Fail(session.FailureKind(request.Kind))
	t.sessions.Touch(s)
	log.Info().Str("token", s.Token()).Str("kind", request.Kind).Msg("screen session failed to get a position")

	return t.sessionResponse(s), nil
}

// GET /api/app/sessions/:token/nearby
func (t *SessionController) listNearby(ctx *gin.Context) (any, *api.Error) {
	s, ok := t.sessions.Get(ctx.Param("token"))
	if !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}

	entries := s.Nearby()
	out := make([]packets.NearbyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, nearbyEntry(e))
	}
	return out, nil
}

// POST /api/app/sessions/:token/selection
//
// List-row taps and map-marker taps both call this.
func (t *SessionController) selectMosque(ctx *gin.Context) (any, *api.Error) {
	s, ok := t.sessions.Get(ctx.Param("token"))
	if !ok {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "session not found"}
	}

	var request packets.SelectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.Select(request.MosqueID); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "unknown mosque"}
	}
	t.sessions.Touch(s)

	selected, err := s.Selected()
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not resolve selection"}
	}
	return nearbyEntry(selected), nil
}
