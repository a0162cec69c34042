package client

import (
	"testing"

	"civic-reporter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records renderer calls and mimics a mapping library that may
// have dropped a marker on its own.
type fakeRenderer struct {
	markers  map[string]MarkerKind
	removals []string
	centered []Coordinates
	popups   []string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{markers: make(map[string]MarkerKind)}
}

func (r *fakeRenderer) AddMarker(id string, kind MarkerKind, at Coordinates, popup string) {
	r.markers[id] = kind
}

func (r *fakeRenderer) RemoveMarker(id string) {
	// tolerate removal of an already-removed marker
	delete(r.markers, id)
	r.removals = append(r.removals, id)
}

func (r *fakeRenderer) CenterOn(at Coordinates) {
	r.centered = append(r.centered, at)
}

func (r *fakeRenderer) OpenPopup(id string) {
	r.popups = append(r.popups, id)
}

func testIssues() []Issue {
	return []Issue{
		{ID: "1", Title: "Pothole", Status: models.Submitted, Coordinates: Coordinates{Lat: 12.9, Lng: 77.6}},
		{ID: "2", Title: "Streetlight", Status: models.InProgress, Coordinates: Coordinates{Lat: 12.91, Lng: 77.61}},
	}
}

func TestSyncPlacesMarkerPerIssue(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())

	assert.Equal(t, 2, view.MarkerCount())
	assert.Equal(t, IssueMarker, renderer.markers["1"])
	assert.Equal(t, IssueMarker, renderer.markers["2"])
}

func TestSyncTearsDownAndRecreates(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())
	view.Sync([]Issue{{ID: "3", Title: "Drain", Coordinates: Coordinates{Lat: 1, Lng: 2}}})

	// every previous marker removed unconditionally, then the new set placed
	assert.ElementsMatch(t, []string{"1", "2"}, renderer.removals)
	assert.Equal(t, 1, view.MarkerCount())
	_, stale := renderer.markers["1"]
	assert.False(t, stale)
	assert.Contains(t, renderer.markers, "3")
}

func TestSyncToleratesAlreadyRemovedMarkers(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())

	// the mapping library dropped a marker behind our back
	delete(renderer.markers, "1")

	assert.NotPanics(t, func() {
		view.Sync(nil)
	})
	assert.Zero(t, view.MarkerCount())
}

func TestFocusCentersAndOpensPopup(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())
	view.Focus("2")

	require.Len(t, renderer.centered, 1)
	assert.Equal(t, Coordinates{Lat: 12.91, Lng: 77.61}, renderer.centered[0])
	assert.Equal(t, []string{"2"}, renderer.popups)
}

func TestFocusOnAbsentIssueIsNoOp(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())
	view.Focus("deleted-concurrently")

	assert.Empty(t, renderer.centered)
	assert.Empty(t, renderer.popups)
}

func TestUserPositionIsDistinctAndUncounted(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.Sync(testIssues())
	view.SetUserPosition(Coordinates{Lat: 12.95, Lng: 77.65})

	assert.Equal(t, UserPositionMarker, renderer.markers[userPositionMarkerID])
	assert.Equal(t, 2, view.MarkerCount(), "user position never counts as an issue marker")

	// collection churn leaves the user marker in place
	view.Sync(nil)
	assert.Contains(t, renderer.markers, userPositionMarkerID)

	view.ClearUserPosition()
	assert.NotContains(t, renderer.markers, userPositionMarkerID)

	// clearing twice is harmless
	view.ClearUserPosition()
}

func TestSetUserPositionMovesSingleMarker(t *testing.T) {
	renderer := newFakeRenderer()
	view := NewMapView(renderer)

	view.SetUserPosition(Coordinates{Lat: 1, Lng: 1})
	view.SetUserPosition(Coordinates{Lat: 2, Lng: 2})

	kinds := 0
	for _, kind := range renderer.markers {
		if kind == UserPositionMarker {
			kinds++
		}
	}
	assert.Equal(t, 1, kinds)
}
