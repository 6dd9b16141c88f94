package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/geo"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/sheet"
)

var testMosques = []model.Mosque{
	{ID: "baitul-futuh", Name: "Baitul Futuh Mosque", Latitude: 51.3921, Longitude: -0.2036},
	{ID: "east-london", Name: "East London Mosque", Latitude: 51.5175, Longitude: -0.0649},
	{ID: "finsbury-park", Name: "Finsbury Park Mosque", Latitude: 51.5641, Longitude: -0.1062},
}

// central London
var userPosition = model.Coordinate{Lat: 51.5074, Lon: -0.1278}

func newTestSession() *Session {
	return New("tok", testMosques, sheet.DefaultOffsets, nil)
}

func TestNewSessionIsLoading(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, PhaseLoading, s.Phase())

	_, err := s.Selected()
	assert.ErrorIs(t, err, ErrNoPosition)

	// list is served in dataset order with no distances yet
	entries := s.Nearby()
	assert.Len(t, entries, 3)
	assert.Equal(t, "baitul-futuh", entries[0].Mosque.ID)
	assert.Nil(t, entries[0].DistanceKm)
}

func TestSetPositionOrdersAndSelectsNearest(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.SetPosition(userPosition))
	assert.Equal(t, PhaseActive, s.Phase())

	entries := s.Nearby()
	assert.Equal(t, "east-london", entries[0].Mosque.ID)
	assert.Equal(t, "finsbury-park", entries[1].Mosque.ID)
	assert.Equal(t, "baitul-futuh", entries[2].Mosque.ID)

	for i := 0; i < len(entries)-1; i++ {
		assert.LessOrEqual(t, *entries[i].DistanceKm, *entries[i+1].DistanceKm)
	}

	selected, err := s.Selected()
	assert.NoError(t, err)
	assert.Equal(t, "east-london", selected.Mosque.ID)

	// "X km away" label input matches the Haversine value to one decimal
	want := geo.DistanceKm(userPosition, selected.Mosque.Coordinate())
	assert.InDelta(t, 4.5, want, 0.2)
	assert.Equal(t,
		fmt.Sprintf("%.1f", want),
		fmt.Sprintf("%.1f", *selected.DistanceKm))
}

func TestSelectReassignsByID(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.SetPosition(userPosition))

	assert.NoError(t, s.Select("baitul-futuh"))
	selected, err := s.Selected()
	assert.NoError(t, err)
	assert.Equal(t, "baitul-futuh", selected.Mosque.ID)

	assert.ErrorIs(t, s.Select("no-such-mosque"), ErrUnknownMosque)
	selected, _ = s.Selected()
	assert.Equal(t, "baitul-futuh", selected.Mosque.ID, "failed select must not change selection")
}

func TestFailureIsTerminal(t *testing.T) {
	s := newTestSession()
	s.Fail(PermissionDenied)
	assert.Equal(t, PhaseError, s.Phase())
	assert.Equal(t, PermissionDenied, s.Failure())

	// no recovery transition from error back to loading or active
	assert.ErrorIs(t, s.SetPosition(userPosition), ErrSessionFailed)
	assert.Equal(t, PhaseError, s.Phase())
}

func TestLateFailureDoesNotDemoteActiveSession(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.SetPosition(userPosition))

	s.Fail(PositionUnavailable)
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestDenialAndFetchFailureLookTheSame(t *testing.T) {
	denied := newTestSession()
	denied.Fail(PermissionDenied)

	unavailable := newTestSession()
	unavailable.Fail(PositionUnavailable)

	// one message, one phase; the kind differs only for logs
	assert.Equal(t, denied.Phase(), unavailable.Phase())
	assert.NotEqual(t, denied.Failure(), unavailable.Failure())
}

func TestSheetGestureRoundTrip(t *testing.T) {
	s := newTestSession()

	s.StartDrag()
	offset, opacity := s.Drag(-10000)
	assert.Equal(t, sheet.DefaultOffsets.Max, offset)
	assert.Equal(t, 1.0, opacity)

	settle := s.EndDrag(0)
	assert.Equal(t, sheet.Max, settle.Target)
	assert.True(t, settle.Expanded)
	assert.Equal(t, 1.0, settle.Opacity)

	_, resting, expanded, _ := s.Sheet()
	assert.Equal(t, sheet.Max, resting)
	assert.True(t, expanded)
}

func TestSnapshotReflectsState(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.SetPosition(userPosition))
	assert.NoError(t, s.Select("finsbury-park"))

	snap := s.Snapshot()
	assert.Equal(t, "tok", snap.Token)
	assert.Equal(t, PhaseActive, snap.Phase)
	assert.Equal(t, "finsbury-park", snap.SelectedID)
	assert.Equal(t, "min", snap.Resting)
	assert.False(t, snap.Expanded)
	assert.Equal(t, userPosition, *snap.Position)
}

func TestSessionCopiesDataset(t *testing.T) {
	mosques := make([]model.Mosque, len(testMosques))
	copy(mosques, testMosques)

	s := New("tok", mosques, sheet.DefaultOffsets, nil)
	assert.NoError(t, s.SetPosition(userPosition))

	// sorting inside the session must not reorder the caller's slice
	assert.Equal(t, "baitul-futuh", mosques[0].ID)
}
