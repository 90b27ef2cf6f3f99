package xsskit

import (
	"math"
	"regexp"
	"strconv"
)

const (
	minValidInteger = -2000000000
	maxValidInteger = 2000000000

	minValidLong = -9000000000000000000
	maxValidLong = 9000000000000000000

	minValidDimension = -10000
	maxValidDimension = 10000
)

var autoDimensionRe = regexp.MustCompile(`^['"]?auto['"]?$`)

// GetValidInteger returns value parsed as a base-10 integer if it lies within
// [-2000000000, 2000000000], otherwise def.
func (s *Service) GetValidInteger(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < minValidInteger || n > maxValidInteger {
		s.rejected("integer", value, err)
		return def
	}
	return int(n)
}

// GetValidLong returns value parsed as a base-10 integer if it lies within
// [-9000000000000000000, 9000000000000000000], otherwise def.
func (s *Service) GetValidLong(value string, def int64) int64 {
	if value == "" {
		return def
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < minValidLong || n > maxValidLong {
		s.rejected("long", value, err)
		return def
	}
	return n
}

// GetValidDouble returns value parsed as a float if it lies within
// [0, math.MaxFloat64], otherwise def. Negative values, NaN and infinities
// are rejected.
func (s *Service) GetValidDouble(value string, def float64) float64 {
	if value == "" {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxFloat64 {
		s.rejected("double", value, err)
		return def
	}
	return f
}

// GetValidDimension validates a CSS dimension value. The literal "auto"
// (optionally single- or double-quoted) yields the quoted string `"auto"`;
// any other value must be an integer within [-10000, 10000] and is returned
// in decimal form. Everything else yields def.
func (s *Service) GetValidDimension(value, def string) string {
	if value == "" {
		return def
	}
	if autoDimensionRe.MatchString(value) {
		return `"auto"`
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < minValidDimension || n > maxValidDimension {
		s.rejected("dimension", value, err)
		return def
	}
	return strconv.FormatInt(n, 10)
}
