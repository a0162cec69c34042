package client

// MarkerKind separates issue markers from the user's own live position,
// which is tracked independently and never counted among issue markers.
type MarkerKind int

const (
	IssueMarker MarkerKind = iota + 1
	UserPositionMarker
)

// MarkerRenderer is the mapping-library side of the presentation sync.
// Implementations must tolerate RemoveMarker for an id that was already
// removed (idempotent teardown).
type MarkerRenderer interface {
	AddMarker(id string, kind MarkerKind, at Coordinates, popup string)
	RemoveMarker(id string)
	CenterOn(at Coordinates)
	OpenPopup(id string)
}

// MapView synchronizes the issue collection onto a MarkerRenderer. Markers
// are not diffed: every collection change tears all issue markers down and
// re-creates them from scratch.
type MapView struct {
	renderer MarkerRenderer

	// ids of issue markers currently placed, in insertion order
	placed []string
	byID   map[string]Issue

	userPlaced bool
}

const userPositionMarkerID = "user-position"

// NewMapView creates a map view rendering through the given renderer.
func NewMapView(renderer MarkerRenderer) *MapView {
	return &MapView{
		renderer: renderer,
		byID:     make(map[string]Issue),
	}
}

// Sync replaces all issue markers with ones for the given collection.
// Teardown is unconditional: every previously placed marker is removed even
// if the renderer already dropped it. Issues without usable coordinates are
// skipped. The user-position marker is untouched.
func (v *MapView) Sync(issues []Issue) {
	for _, id := range v.placed {
		v.renderer.RemoveMarker(id)
	}
	v.placed = v.placed[:0]
	v.byID = make(map[string]Issue, len(issues))

	for _, issue := range issues {
		v.renderer.AddMarker(issue.ID, IssueMarker, issue.Coordinates, issue.Title)
		v.placed = append(v.placed, issue.ID)
		v.byID[issue.ID] = issue
	}
}

// Focus centers the view on the given issue and opens its popup. A focus
// request for an issue absent from the current collection (deleted
// concurrently, say) is a no-op rather than an error.
func (v *MapView) Focus(id string) {
	issue, ok := v.byID[id]
	if !ok {
		return
	}
	v.renderer.CenterOn(issue.Coordinates)
	v.renderer.OpenPopup(id)
}

// SetUserPosition places or moves the distinct marker for the user's own
// live position.
func (v *MapView) SetUserPosition(at Coordinates) {
	if v.userPlaced {
		v.renderer.RemoveMarker(userPositionMarkerID)
	}
	v.renderer.AddMarker(userPositionMarkerID, UserPositionMarker, at, "")
	v.userPlaced = true
}

// ClearUserPosition removes the user-position marker if present.
func (v *MapView) ClearUserPosition() {
	if !v.userPlaced {
		return
	}
	v.renderer.RemoveMarker(userPositionMarkerID)
	v.userPlaced = false
}

// MarkerCount returns the number of issue markers currently placed. The
// user-position marker is not an issue marker and is never counted.
func (v *MapView) MarkerCount() int {
	return len(v.placed)
}
