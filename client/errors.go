// Package client is the front-end core of the civic reporter: an issue
// store kept in sync with the remote collection, the map presentation
// layer, position acquisition, and local session preferences.
package client

import (
	"errors"
	"fmt"
)

// Validation failures raised before any network call is made.
var (
	ErrMissingTitle       = errors.New("title must not be empty")
	ErrMissingDescription = errors.New("description must not be empty")
	ErrMissingCategory    = errors.New("category must not be empty")
	ErrMissingCoordinates = errors.New("coordinates are required")
)

// FetchError reports that listing the remote collection did not succeed.
// The cause is not differentiated further: a transport failure and a server
// rejection surface the same way.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch issues: %v", e.Err)
	}
	return fmt.Sprintf("failed to fetch issues: status %d", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CreateError reports a failed issue creation.
type CreateError struct {
	Status int
	Err    error
}

func (e *CreateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to create issue: %v", e.Err)
	}
	return fmt.Sprintf("failed to create issue: status %d", e.Status)
}

func (e *CreateError) Unwrap() error { return e.Err }

// UpdateError reports a failed issue update or status change.
type UpdateError struct {
	ID     string
	Status int
	Err    error
}

func (e *UpdateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to update issue %s: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("failed to update issue %s: status %d", e.ID, e.Status)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError reports a failed issue deletion.
type DeleteError struct {
	ID     string
	Status int
	Err    error
}

func (e *DeleteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to delete issue %s: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("failed to delete issue %s: status %d", e.ID, e.Status)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// GeolocationErrorKind distinguishes the ways position acquisition can fail.
type GeolocationErrorKind int

const (
	PermissionDenied GeolocationErrorKind = iota + 1
	PositionUnavailable
	AcquisitionTimeout
)

func (k GeolocationErrorKind) String() string {
	switch k {
	case PermissionDenied:
		return "permission denied"
	case PositionUnavailable:
		return "position unavailable"
	case AcquisitionTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// GeolocationError reports a failure from the position-acquisition provider.
type GeolocationError struct {
	Kind GeolocationErrorKind
	Err  error
}

func (e *GeolocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("geolocation failed (%s)", e.Kind)
}

func (e *GeolocationError) Unwrap() error { return e.Err }
