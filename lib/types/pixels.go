package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Pixels is css length in px
type Pixels int

func (p Pixels) String() string {
	return fmt.Sprintf("%dpx", int(p))
}

// ParsePixels parses "<n>px" or bare "<n>"
func ParsePixels(s string) (Pixels, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, fmt.Errorf("invalid pixels")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid pixels: %w", err)
	}
	return Pixels(n), nil
}
