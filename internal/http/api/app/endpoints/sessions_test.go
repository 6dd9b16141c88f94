package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/http/api"
	"github.com/openummah/masjidmap/internal/http/api/app/packets"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/session"
	"github.com/openummah/masjidmap/internal/sheet"
)

var testMosques = []model.Mosque{
	{ID: "baitul-futuh", Name: "Baitul Futuh Mosque", Latitude: 51.3921, Longitude: -0.2036},
	{ID: "east-london", Name: "East London Mosque", Latitude: 51.5175, Longitude: -0.0649},
	{ID: "finsbury-park", Name: "Finsbury Park Mosque", Latitude: 51.5641, Longitude: -0.1062},
}

func setupRouter() (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	sessions := session.NewManager(testMosques, sheet.DefaultOffsets)
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/app"}, SessionModule(sessions))
	return r, sessions
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func position(lat, lon float64) packets.ReportPositionRequest {
	return packets.ReportPositionRequest{Lat: &lat, Lon: &lon}
}

func openSession(t *testing.T, r *gin.Engine) packets.SessionResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/app/sessions", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp packets.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	assert.Equal(t, "loading", resp.Phase)
	assert.Equal(t, 3, resp.MosqueCount)
	assert.Equal(t, "min", resp.Sheet.Resting)
	assert.False(t, resp.Sheet.Expanded)
	assert.Equal(t, sheet.DefaultOffsets.Min, resp.Sheet.Offset)
	assert.Nil(t, resp.Selected)
}

func TestReportPositionOrdersNearby(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/position",
		position(51.5074, -0.1278))
	assert.Equal(t, http.StatusOK, w.Code)

	var updated packets.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "active", updated.Phase)
	assert.NotNil(t, updated.Selected)
	assert.Equal(t, "east-london", updated.Selected.ID)
	assert.True(t, strings.HasSuffix(updated.Selected.DistanceLabel, "km away"))

	w = doJSON(t, r, http.MethodGet, "/api/app/sessions/"+resp.Token+"/nearby", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var nearby []packets.NearbyEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &nearby))
	assert.Len(t, nearby, 3)
	assert.Equal(t, "east-london", nearby[0].ID)
	assert.Equal(t, "finsbury-park", nearby[1].ID)
	assert.Equal(t, "baitul-futuh", nearby[2].ID)
	for _, e := range nearby {
		assert.NotNil(t, e.DistanceKm)
	}
}

func TestPermissionDeniedIsTerminal(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/position/failed",
		packets.ReportFailureRequest{Kind: "permission_denied"})
	assert.Equal(t, http.StatusOK, w.Code)

	var failed packets.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	assert.Equal(t, "error", failed.Phase)
	assert.Equal(t, session.LocationErrorMessage, failed.ErrorMessage)

	// a position arriving after the failure is rejected
	w = doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/position",
		position(51.5074, -0.1278))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSelectionByMarkerOrRow(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/position",
		position(51.5074, -0.1278))

	w := doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/selection",
		packets.SelectRequest{MosqueID: "baitul-futuh"})
	assert.Equal(t, http.StatusOK, w.Code)

	var selected packets.NearbyEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &selected))
	assert.Equal(t, "baitul-futuh", selected.ID)

	w = doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/selection",
		packets.SelectRequest{MosqueID: "no-such-id"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPositionOnPrimeMeridianIsAccepted(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	// Greenwich: a longitude of exactly 0 must bind, not fail validation
	w := doJSON(t, r, http.MethodPost, "/api/app/sessions/"+resp.Token+"/position",
		position(51.4779, 0))
	assert.Equal(t, http.StatusOK, w.Code)

	var updated packets.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "active", updated.Phase)
	assert.NotNil(t, updated.Selected)
}

func TestCloseSession(t *testing.T) {
	r, sessions := setupRouter()
	resp := openSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/app/sessions/"+resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, ok := sessions.Get(resp.Token)
	assert.False(t, ok)

	w = doJSON(t, r, http.MethodGet, "/api/app/sessions/"+resp.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// closing twice reports not-found
	w = doJSON(t, r, http.MethodDelete, "/api/app/sessions/"+resp.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/app/sessions/doesnotexist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSheetSocketDialogue(t *testing.T) {
	r, _ := setupRouter()
	resp := openSession(t, r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/app/sessions/" + resp.Token + "/sheet"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// drag the sheet up past its travel bound: offset clamps to Max
	assert.NoError(t, conn.WriteJSON(packets.GestureEvent{Type: "start"}))
	assert.NoError(t, conn.WriteJSON(packets.GestureEvent{Type: "move", Translation: -10000}))

	var frame packets.SheetFrame
	assert.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "offset", frame.Type)
	assert.Equal(t, sheet.DefaultOffsets.Max, frame.Offset)
	assert.Equal(t, 1.0, frame.ListOpacity)

	// slow release settles on the nearest rest position
	assert.NoError(t, conn.WriteJSON(packets.GestureEvent{Type: "end", Velocity: 0}))
	assert.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "settle", frame.Type)
	assert.Equal(t, "max", frame.Target)
	assert.True(t, frame.Expanded)
	assert.Equal(t, sheet.DefaultOffsets.Max, frame.Offset)
}
