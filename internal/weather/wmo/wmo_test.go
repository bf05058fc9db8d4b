package wmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var knownCodes = []int{
	0, 1, 2, 3, 45, 48, 51, 53, 55, 61, 63, 65,
	71, 73, 75, 77, 80, 81, 82, 85, 86, 95, 96, 99,
}

func TestLookupKnownCodes(t *testing.T) {
	for _, code := range knownCodes {
		e := Lookup(code)
		assert.Equal(t, code, e.Code)
		assert.NotEmpty(t, e.Icon, "code %d has no icon", code)
		assert.NotEmpty(t, e.Description, "code %d has no description", code)
		assert.NotEqual(t, DefaultDescription, e.Description, "code %d resolves to the default", code)
		assert.True(t, Known(code))
	}
}

func TestLookupUnknownCodes(t *testing.T) {
	for _, code := range []int{12, -1, 200, 4, 100} {
		e := Lookup(code)
		assert.Equal(t, DefaultIcon, e.Icon, "code %d", code)
		assert.Equal(t, DefaultDescription, e.Description, "code %d", code)
		assert.False(t, Known(code))
	}
}

func TestLookupSpotChecks(t *testing.T) {
	assert.Equal(t, "Clear sky", Lookup(0).Description)
	assert.Equal(t, "☁️", Lookup(3).Icon)
	assert.Equal(t, "Overcast", Lookup(3).Description)
	assert.Equal(t, "Thunderstorm", Lookup(95).Description)
}
