package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinate is a single longitude/latitude pair.
// SRID 4326 (WGS84) is used for all coordinates.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Boundary represents a region outline as an ordered ring of vertices.
// Vertices are stored unclosed; the first point is not repeated at the end.
type Boundary []Coordinate

// BoundingBox is the axis-aligned extent of a boundary.
type BoundingBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Contains reports whether the coordinate lies inside the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Longitude >= b.MinLon && c.Longitude <= b.MaxLon &&
		c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat
}

// Width returns the longitudinal span of the box in degrees.
func (b BoundingBox) Width() float64 {
	return b.MaxLon - b.MinLon
}

// Height returns the latitudinal span of the box in degrees.
func (b BoundingBox) Height() float64 {
	return b.MaxLat - b.MinLat
}

// BoundingBox computes the axis-aligned extent of the boundary.
// It returns false when the boundary has fewer than three vertices or
// contains a non-finite coordinate; callers treat that as "no spatial
// detail available" rather than an error.
func (b Boundary) BoundingBox() (BoundingBox, bool) {
	if len(b) < 3 {
		return BoundingBox{}, false
	}

	box := BoundingBox{
		MinLon: b[0].Longitude,
		MaxLon: b[0].Longitude,
		MinLat: b[0].Latitude,
		MaxLat: b[0].Latitude,
	}
	for _, c := range b {
		if !isFinite(c.Longitude) || !isFinite(c.Latitude) {
			return BoundingBox{}, false
		}
		box.MinLon = math.Min(box.MinLon, c.Longitude)
		box.MaxLon = math.Max(box.MaxLon, c.Longitude)
		box.MinLat = math.Min(box.MinLat, c.Latitude)
		box.MaxLat = math.Max(box.MaxLat, c.Latitude)
	}
	return box, true
}

// MarshalJSON implements json.Marshaler for API responses.
// Returns a GeoJSON-compliant Polygon geometry, closing the ring as the
// format requires. Degenerate boundaries marshal as null.
func (b Boundary) MarshalJSON() ([]byte, error) {
	if len(b) < 3 {
		return []byte("null"), nil
	}

	ring := make([][2]float64, 0, len(b)+1)
	for _, c := range b {
		ring = append(ring, [2]float64{c.Longitude, c.Latitude})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	geom := struct {
		Type        string         `json:"type"`
		Coordinates [][][2]float64 `json:"coordinates"`
	}{
		Type:        "Polygon",
		Coordinates: [][][2]float64{ring},
	}
	return json.Marshal(geom)
}

// UnmarshalJSON implements json.Unmarshaler for parsing GeoJSON input.
// Only the outer ring of the polygon is kept; a trailing point equal to the
// first is dropped so the stored boundary stays unclosed.
func (b *Boundary) UnmarshalJSON(data []byte) error {
	var geom struct {
		Type        string         `json:"type"`
		Coordinates [][][2]float64 `json:"coordinates"`
	}

	if err := json.Unmarshal(data, &geom); err != nil {
		return fmt.Errorf("failed to unmarshal boundary: %w", err)
	}

	if geom.Type != "" && geom.Type != "Polygon" {
		return fmt.Errorf("expected Polygon type, got %s", geom.Type)
	}

	if len(geom.Coordinates) == 0 {
		*b = nil
		return nil
	}

	ring := geom.Coordinates[0]
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}

	out := make(Boundary, 0, len(ring))
	for _, p := range ring {
		out = append(out, Coordinate{Longitude: p[0], Latitude: p[1]})
	}
	*b = out
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
