package tui

import (
	"math"
	"strings"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// clampProgress keeps an animation position within [0,1].
func clampProgress(f float64) float64 {
	return math.Min(math.Max(f, 0), 1)
}
