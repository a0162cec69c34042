package client

import (
	"strconv"
	"time"

	"civic-reporter/models"
)

// Coordinates is the nested lat/lng pair used client-side. The wire format
// carries latitude and longitude as separate flat fields; conversion happens
// at this package's boundary.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// wireCoordinate serializes a coordinate at fixed six-decimal precision so
// repeated round-trips cannot accumulate floating-point representation drift.
func wireCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Issue is the client-side issue shape: the identifier is an opaque string
// (the server assigns numeric ids; they are stringified on arrival) and the
// coordinates are nested.
type Issue struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Status      models.IssueStatus `json:"status"`
	Coordinates Coordinates        `json:"coordinates"`
	Address     string             `json:"address,omitempty"`
	PhotoURL    string             `json:"photo,omitempty"`
	Timestamp   int64              `json:"timestamp"`
	CreatedAt   time.Time          `json:"createdAt"`
	Provisional bool               `json:"-"`
}

// Draft is the user-entered payload for a new issue. The photo, when
// present, is an opaque binary attachment forwarded as a multipart part.
type Draft struct {
	Title       string
	Description string
	Category    string
	Coordinates *Coordinates
	Address     string
	Photo       []byte
	PhotoName   string
}

// Update carries a partial edit. Only non-nil fields are sent; the server
// leaves everything else untouched.
type Update struct {
	Title       *string
	Description *string
	Category    *string
	Status      *models.IssueStatus
	Coordinates *Coordinates
	Address     *string
	Photo       []byte
	PhotoName   string
}

// wireIssue is the flat record the server sends and receives.
type wireIssue struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Status      models.IssueStatus `json:"status"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Address     string             `json:"address,omitempty"`
	ImageURL    *string            `json:"imageUrl,omitempty"`
	Timestamp   int64              `json:"timestamp"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (w wireIssue) toIssue() Issue {
	issue := Issue{
		ID:          strconv.FormatInt(w.ID, 10),
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Status:      w.Status,
		Coordinates: Coordinates{Lat: w.Latitude, Lng: w.Longitude},
		Address:     w.Address,
		Timestamp:   w.Timestamp,
		CreatedAt:   w.CreatedAt,
	}
	if w.ImageURL != nil {
		issue.PhotoURL = *w.ImageURL
	}
	return issue
}

// numericID recovers the server's native numeric form of an id for URL
// building. Client code otherwise treats ids as opaque strings.
func numericID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
