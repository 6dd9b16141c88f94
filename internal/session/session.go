// Package session holds the per-device state behind the nearby-mosques
// screen: the user position (once the shell obtains it), the distance-ordered
// venue list, the current selection and the bottom-sheet controller.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/openummah/masjidmap/internal/geo"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/sheet"
)

// Phase is the screen lifecycle: loading until a position (or a failure)
// arrives, then interactive or terminally failed. There is no transition out
// of PhaseError.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseActive  Phase = "active"
	PhaseError   Phase = "error"
)

// FailureKind records why a session never got a position. The user-facing
// message does not distinguish the two; the kind is kept for logs.
type FailureKind string

const (
	PermissionDenied    FailureKind = "permission_denied"
	PositionUnavailable FailureKind = "position_unavailable"
)

// LocationErrorMessage is the one static message shown for either failure.
const LocationErrorMessage = "Location unavailable. Enable location access to see nearby mosques."

var (
	ErrSessionFailed = errors.New("session is in a terminal error state")
	ErrNoPosition    = errors.New("session has no position yet")
	ErrUnknownMosque = errors.New("unknown mosque id")
)

// Entry is one row of the ordered list: a mosque plus its distance label
// input. DistanceKm is nil until the session has a position.
type Entry struct {
	Mosque     model.Mosque
	DistanceKm *float64
}

// Session owns one screen's mutable state. Gesture events for a session
// arrive serialized over a single socket, but the HTTP surface is
// concurrent, so every access goes through the mutex.
type Session struct {
	mu sync.Mutex

	token     string
	createdAt time.Time

	phase    Phase
	failure  FailureKind
	position *model.Coordinate

	mosques    []model.Mosque // re-ordered once when the position arrives
	selectedID string

	sheet *sheet.Controller
}

// New copies the dataset into a fresh loading-phase session with the sheet
// collapsed and nothing selected.
func New(token string, mosques []model.Mosque, offsets sheet.Offsets, animator sheet.Animator) *Session {
	own := make([]model.Mosque, len(mosques))
	copy(own, mosques)
	return &Session{
		token:     token,
		createdAt: time.Now(),
		phase:     PhaseLoading,
		mosques:   own,
		sheet:     sheet.NewController(offsets, sheet.DefaultFlickVelocity, animator),
	}
}

func (s *Session) Token() string { return s.token }

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Failure() FailureKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// SetPosition records the device position, orders the list ascending by
// distance (stable for ties) and selects the nearest mosque. Rejected once
// the session has failed: denial is terminal for the session.
func (s *Session) SetPosition(pos model.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseError {
		return ErrSessionFailed
	}

	p := pos
	s.position = &p
	geo.SortByDistance(s.mosques, p)
	if len(s.mosques) > 0 {
		s.selectedID = s.mosques[0].ID
	}
	s.phase = PhaseActive
	return nil
}

// Fail moves the session into the terminal error phase. Once active, a
// session stays active; a late failure report is ignored.
func (s *Session) Fail(kind FailureKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoading {
		return
	}
	s.phase = PhaseError
	s.failure = kind
}

// Select reassigns the selected mosque. Marker taps and list-row taps both
// land here; the selection is held by ID and resolved by lookup.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.mosques {
		if m.ID == id {
			s.selectedID = id
			return nil
		}
	}
	return ErrUnknownMosque
}

// Nearby returns the ordered list with per-venue distances. Distances are
// recomputed from the stored position on every call; the formula is pure, so
// this is idempotent.
func (s *Session) Nearby() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.mosques))
	for _, m := range s.mosques {
		e := Entry{Mosque: m}
		if s.position != nil {
			d := geo.DistanceKm(*s.position, m.Coordinate())
			e.DistanceKm = &d
		}
		out = append(out, e)
	}
	return out
}

// Selected resolves the current selection. Returns ErrNoPosition only when
// nothing was ever selected (list defaults to the nearest on SetPosition).
func (s *Session) Selected() (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == "" {
		return Entry{}, ErrNoPosition
	}
	for _, m := range s.mosques {
		if m.ID == s.selectedID {
			e := Entry{Mosque: m}
			if s.position != nil {
				d := geo.DistanceKm(*s.position, m.Coordinate())
				e.DistanceKm = &d
			}
			return e, nil
		}
	}
	return Entry{}, ErrUnknownMosque
}

// StartDrag forwards gesture-start to the sheet controller.
func (s *Session) StartDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheet.StartDrag()
}

// Drag forwards a gesture update and returns the clamped offset plus the
// derived list opacity.
func (s *Session) Drag(translation float64) (offset, opacity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	off := s.sheet.Drag(translation)
	return off, s.sheet.ListOpacity()
}

// Settle is the committed outcome of a release.
type Settle struct {
	Target   sheet.Position
	Offset   float64
	Expanded bool
	Opacity  float64
}

// EndDrag forwards gesture-end, runs the snap decision and reports the
// committed target.
func (s *Session) EndDrag(velocity float64) Settle {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.sheet.EndDrag(velocity)

	// Opacity at the settle target, not at the release point: the shell
	// animates the list alongside the sheet and only the end state matters.
	var opacity float64
	switch target {
	case sheet.Max:
		opacity = 1
	case sheet.Mid:
		opacity = 0.5
	}

	return Settle{
		Target:   target,
		Offset:   s.sheet.Offsets().Of(target),
		Expanded: s.sheet.Expanded(),
		Opacity:  opacity,
	}
}

// SetAnimatedOffset records a settle-animation frame reported by the shell
// so a new drag starts from the live value.
func (s *Session) SetAnimatedOffset(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheet.SetAnimatedOffset(v)
}

// SheetOffsets reports the travel-range constants. Immutable after New.
func (s *Session) SheetOffsets() sheet.Offsets {
	return s.sheet.Offsets()
}

// Sheet reports the sheet state for the read-only session endpoint.
func (s *Session) Sheet() (offset float64, resting sheet.Position, expanded bool, opacity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheet.Offset(), s.sheet.Resting(), s.sheet.Expanded(), s.sheet.ListOpacity()
}

// Snapshot is the serializable view cached in Redis for introspection.
type Snapshot struct {
	Token      string            `json:"token"`
	Phase      Phase             `json:"phase"`
	Failure    FailureKind       `json:"failure,omitempty"`
	Position   *model.Coordinate `json:"position,omitempty"`
	SelectedID string            `json:"selected_id,omitempty"`
	Resting    string            `json:"resting"`
	Expanded   bool              `json:"expanded"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Token:      s.token,
		Phase:      s.phase,
		Failure:    s.failure,
		Position:   s.position,
		SelectedID: s.selectedID,
		Resting:    s.sheet.Resting().String(),
		Expanded:   s.sheet.Expanded(),
		CreatedAt:  s.createdAt,
	}
}
