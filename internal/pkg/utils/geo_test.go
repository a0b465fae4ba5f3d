package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourism-inventory/internal/pkg/utils"
)

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"city center", 41.3874, 2.1686, true},
		{"equator meridian", 0, 0, true},
		{"poles", 90, 180, true},
		{"antipodes", -90, -180, true},
		{"latitude too high", 90.001, 0, false},
		{"latitude too low", -90.001, 0, false},
		{"longitude too high", 0, 180.001, false},
		{"longitude too low", 0, -180.001, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, utils.ValidateCoordinates(tc.lat, tc.lon))
		})
	}
}
