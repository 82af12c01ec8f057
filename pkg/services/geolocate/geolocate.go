// Package geolocate resolves the device position used to stamp bail
// verification entries.
package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Position is a WGS84 coordinate pair.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Locator resolves the current position.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// FormatPosition renders a position the way it is written into the bail_gps
// field.
func FormatPosition(p Position) string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

// HTTPLocator queries a JSON lookup endpoint, such as an IP geolocation
// service, for a coarse position.
type HTTPLocator struct {
	url    string
	client *http.Client
}

// NewHTTPLocator builds a locator against the given lookup URL. The endpoint
// must answer with a JSON object carrying lat and lng fields.
func NewHTTPLocator(url string) *HTTPLocator {
	return &HTTPLocator{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *HTTPLocator) Locate(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Position{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("position lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("position lookup failed: status %d", resp.StatusCode)
	}

	// Lookup services disagree on the longitude key: ip-api answers
	// "lon", others "lng". Accept both.
	var body struct {
		Lat float64  `json:"lat"`
		Lng *float64 `json:"lng"`
		Lon *float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Position{}, fmt.Errorf("position lookup failed: %w", err)
	}
	pos := Position{Lat: body.Lat}
	switch {
	case body.Lng != nil:
		pos.Lng = *body.Lng
	case body.Lon != nil:
		pos.Lng = *body.Lon
	}
	return pos, nil
}
