// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "strconv"

// IsNumber reports whether the raw observation v can be treated as a
// number. Go numeric types and bools qualify, as does a string that
// parses as a float. nil also qualifies: it is the explicit
// missing-value marker supplied by callers, and they rely on it
// passing this check even though Numeric maps it to NaN. The string
// "null" does not parse and so does not qualify.
func IsNumber(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return true
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	}
	return false
}

// Numeric coerces raw observations to float64s. Numbers keep their
// value, numeric strings parse to theirs, and bools map to 0 or 1.
// nil and anything unparseable become NaN, the missing-value marker
// used throughout this package.
func Numeric(vs []any) []float64 {
	xs := make([]float64, len(vs))
	for i, v := range vs {
		xs[i] = numeric(v)
	}
	return xs
}

func numeric(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return nan
}

// CountNull counts the observations that mark a missing value: the
// nil sentinel or the literal string "null".
func CountNull(vs []any) int {
	n := 0
	for _, v := range vs {
		if v == nil {
			n++
		} else if s, ok := v.(string); ok && s == "null" {
			n++
		}
	}
	return n
}
