package helper_util

import (
	"time"
)

// ParseTime parses an RFC3339 timestamp; the empty string is the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
