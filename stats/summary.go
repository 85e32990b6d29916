// Copyright 2024 The statkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"encoding/json"
	"math"
)

// A Summary describes a sample of raw observations in the shape
// consumed by data-exploration frontends.
type Summary struct {
	// Minimum and Maximum are the extremes of the sample. They are
	// NaN when any observation is missing or non-numeric.
	Minimum, Maximum float64

	// Mean is the arithmetic mean, NaN under the same conditions.
	Mean float64

	// Median is the 50th percentile. Unlike the fields above it is
	// computed over the valid observations only.
	Median float64

	// Nulls counts the observations that were the nil sentinel or
	// the literal string "null".
	Nulls int

	// Q25 and Q75 are the 25th and 75th percentiles. They are only
	// meaningful when Quartiles is set.
	Q25, Q75 float64

	// Quartiles records whether quartiles were requested.
	Quartiles bool
}

// Describe summarizes raw observations after numeric coercion. With
// quartiles set, the 25th and 75th percentiles are included in the
// summary and in its JSON form.
func Describe(vs []any, quartiles bool) *Summary {
	s := Sample{Xs: Numeric(vs)}
	sum := &Summary{
		Minimum:   s.Min(),
		Maximum:   s.Max(),
		Mean:      s.Mean(),
		Median:    s.Median(),
		Nulls:     CountNull(vs),
		Quartiles: quartiles,
	}
	if quartiles {
		sum.Q25 = s.Quantile(0.25)
		sum.Q75 = s.Quantile(0.75)
	}
	return sum
}

// MarshalJSON emits the wire shape callers expect: the keys minimum,
// maximum, mean, median and null are always present, and
// "quantile 25%" and "quantile 75%" appear only when the summary
// carries quartiles. NaN fields encode as JSON null.
func (s *Summary) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"minimum": jsonNumber(s.Minimum),
		"maximum": jsonNumber(s.Maximum),
		"mean":    jsonNumber(s.Mean),
		"median":  jsonNumber(s.Median),
		"null":    s.Nulls,
	}
	if s.Quartiles {
		m["quantile 25%"] = jsonNumber(s.Q25)
		m["quantile 75%"] = jsonNumber(s.Q75)
	}
	return json.Marshal(m)
}

// jsonNumber maps NaN to nil since JSON has no NaN literal.
func jsonNumber(x float64) any {
	if math.IsNaN(x) {
		return nil
	}
	return x
}
