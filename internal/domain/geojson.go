package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// GeoJSON input types for bulk ingestion. Only Point features become
// assets; other geometry types are accepted for map display and skipped.

// ErrNotFeatureCollection is returned when the payload parses as JSON but
// is not a FeatureCollection with a features array.
var ErrNotFeatureCollection = errors.New("payload is not a GeoJSON FeatureCollection")

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry keeps coordinates raw: their shape depends on the geometry
// type, and only Point pairs are ever decoded.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseFeatureCollection strictly decodes an uploaded GeoJSON payload.
// Malformed JSON or a missing features array fails the whole parse; there
// is no partial result.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	// Distinguish an absent features key from an empty one.
	var probe struct {
		Type     string           `json:"type"`
		Features *json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("malformed GeoJSON: %w", err)
	}
	if probe.Features == nil {
		return nil, ErrNotFeatureCollection
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("malformed GeoJSON: %w", err)
	}
	return &fc, nil
}

// PointCoordinates decodes a Point geometry's [longitude, latitude] pair.
// ok is false for non-Point geometries or non-numeric coordinates.
func (g *Geometry) PointCoordinates() (lon, lat float64, ok bool) {
	if g.Type != "Point" || len(g.Coordinates) == 0 {
		return 0, 0, false
	}

	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return 0, 0, false
	}
	if len(coords) < 2 {
		return 0, 0, false
	}
	// GeoJSON axis order: [lon, lat].
	return coords[0], coords[1], true
}

// StringProperties coerces the feature's property values to strings for
// classification. Non-scalar values are dropped.
func (f *Feature) StringProperties() map[string]string {
	props := make(map[string]string, len(f.Properties))
	for k, v := range f.Properties {
		switch val := v.(type) {
		case string:
			props[k] = val
		case float64:
			props[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			props[k] = strconv.FormatBool(val)
		}
	}
	return props
}

// DisplayName prefers properties.name and falls back to "name:en".
func (f *Feature) DisplayName() string {
	props := f.StringProperties()
	if name := props["name"]; name != "" {
		return name
	}
	return props["name:en"]
}

// DescriptionText returns properties.description, or nil when absent.
func (f *Feature) DescriptionText() *string {
	if desc := f.StringProperties()["description"]; desc != "" {
		return &desc
	}
	return nil
}
