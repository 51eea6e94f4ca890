package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses a decimal number from user input. Blank input, NaN and
// infinities are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseCardioMinutes coerces free input into a non-negative whole number of
// minutes. Only the leading integer counts, so "12.9" and "12 min" both give
// 12. Input without leading digits yields 0.
func ParseCardioMinutes(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Only overflow gets here.
		if s[0] == '-' {
			return 0
		}
		return math.MaxInt32
	}
	if v < 0 {
		return 0
	}
	return int(min(v, math.MaxInt32))
}

func IsPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
