package dataset

import (
	"strconv"
	"strings"
)

// ParseHeight converts a "feet-inches" string such as "6-2" into inches.
func ParseHeight(raw string) (int, error) {
	malformed := &MalformedFieldError{Field: "height", Value: raw, Want: "F-I"}

	ft, in, ok := strings.Cut(raw, "-")
	if !ok || strings.Contains(in, "-") {
		return 0, malformed
	}
	feet, err := strconv.Atoi(strings.TrimSpace(ft))
	if err != nil || feet < 0 {
		return 0, malformed
	}
	inches, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || inches < 0 {
		return 0, malformed
	}
	return 12*feet + inches, nil
}
