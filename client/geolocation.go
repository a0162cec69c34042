package client

import (
	"context"
	"fmt"
	"time"
)

// Position is a fix from the position provider. Accuracy is the reported
// error radius in meters; zero means the provider did not report one.
type Position struct {
	Lat      float64
	Lng      float64
	Accuracy float64
}

// Coordinates drops the accuracy and yields the map-facing pair.
func (p Position) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lng: p.Lng}
}

// PositionProvider is the opaque position-fix collaborator (a browser
// geolocation bridge, a GPS daemon, a test stub).
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// AcquireOptions tunes the acquisition retry loop.
type AcquireOptions struct {
	// MaxAttempts caps how many fixes are requested while accuracy stays
	// above the threshold. Zero means the default of 3.
	MaxAttempts int
	// AccuracyThreshold is the error radius (meters) above which a fix is
	// retried. Zero means the default of 1000m.
	AccuracyThreshold float64
	// RetryDelay is the fixed pause between attempts. Zero means 1s.
	RetryDelay time.Duration
}

func (o AcquireOptions) withDefaults() AcquireOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.AccuracyThreshold <= 0 {
		o.AccuracyThreshold = 1000
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = time.Second
	}
	return o
}

// AcquirePosition asks the provider for a fix, retrying with a fixed delay
// while the reported accuracy exceeds the threshold. When the attempt cap is
// exhausted without an acceptable fix it gives up with a GeolocationError.
// Provider failures surface as a GeolocationError too; a provider error that
// already is one passes through unchanged.
func AcquirePosition(ctx context.Context, provider PositionProvider, opts AcquireOptions) (Position, error) {
	opts = opts.withDefaults()

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		pos, err := provider.CurrentPosition(ctx)
		if err != nil {
			if geoErr, ok := err.(*GeolocationError); ok {
				return Position{}, geoErr
			}
			return Position{}, &GeolocationError{Kind: PositionUnavailable, Err: err}
		}

		if pos.Accuracy <= opts.AccuracyThreshold {
			return pos, nil
		}
		if attempt == opts.MaxAttempts {
			break
		}

		select {
		case <-time.After(opts.RetryDelay):
		case <-ctx.Done():
			return Position{}, &GeolocationError{Kind: AcquisitionTimeout, Err: ctx.Err()}
		}
	}

	return Position{}, &GeolocationError{
		Kind: PositionUnavailable,
		Err:  fmt.Errorf("no fix within %.0fm after %d attempts", opts.AccuracyThreshold, opts.MaxAttempts),
	}
}
