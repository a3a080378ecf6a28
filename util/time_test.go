package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	parsed, err := ParseTime("2011-01-19 22:15")
	assert.NoError(t, err)
	assert.Equal(t, 2011, parsed.Year())
	assert.Equal(t, 22, parsed.Hour())

	_, err = ParseTime("not a timestamp")
	assert.Error(t, err)
}
