package util

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime decodes a timestamp in any commonly used layout.
func ParseTime(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}
