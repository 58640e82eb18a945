package region

import "math"

// Cut points are clamped into this range so no region collapses to nothing.
const (
	MinBoundary = 0.1
	MaxBoundary = 0.9
)

// maxGap is the preferred minimum distance between neighbouring cuts.
const maxGap = 0.05

// Span is the fractional slice [Start, End] of a bed owned by one group.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width returns the fraction of the bed covered by the span.
func (s Span) Width() float64 { return s.End - s.Start }

// Whole is the span of a bed with a single group.
var Whole = Span{Start: 0, End: 1}

// gap returns the minimum cut separation for n groups. It always leaves room
// for n-1 cuts inside [MinBoundary, MaxBoundary].
func gap(n int) float64 {
	if n <= 0 {
		return maxGap
	}
	return math.Min(maxGap, (MaxBoundary-MinBoundary)/float64(n))
}

// Even returns evenly spaced cut points for n groups.
func Even(n int) []float64 {
	if n <= 1 {
		return nil
	}
	cuts := make([]float64, n-1)
	for i := range cuts {
		cuts[i] = float64(i+1) / float64(n)
	}
	return Normalize(cuts, n)
}

// Normalize returns a copy of cuts that is valid for n groups: exactly n-1
// values, strictly ascending and inside [MinBoundary, MaxBoundary]. A slice of
// the wrong length is replaced by [Even].
func Normalize(cuts []float64, n int) []float64 {
	if n <= 1 {
		return nil
	}
	if len(cuts) != n-1 {
		return Even(n)
	}

	out := make([]float64, len(cuts))
	for i, c := range cuts {
		if math.IsNaN(c) {
			c = float64(i+1) / float64(n)
		}
		out[i] = clamp(c, MinBoundary, MaxBoundary)
	}

	g := gap(n)
	for i := 1; i < len(out); i++ {
		out[i] = math.Max(out[i], out[i-1]+g)
	}
	last := len(out) - 1
	out[last] = math.Min(out[last], MaxBoundary)
	for i := last - 1; i >= 0; i-- {
		out[i] = math.Min(out[i], out[i+1]-g)
	}
	return out
}

// Move returns a copy of cuts with cut i set to v, clamped between its
// neighbours so the order is preserved. An out-of-range index changes nothing.
func Move(cuts []float64, i int, v float64) []float64 {
	out := append([]float64(nil), cuts...)
	if i < 0 || i >= len(out) || math.IsNaN(v) {
		return out
	}

	g := gap(len(out) + 1)
	lo, hi := MinBoundary, MaxBoundary
	if i > 0 {
		lo = out[i-1] + g
	}
	if i < len(out)-1 {
		hi = out[i+1] - g
	}
	out[i] = clamp(v, lo, hi)
	return out
}

// Spans returns the span owned by each of n groups.
func Spans(cuts []float64, n int) []Span {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Span{Whole}
	}

	cuts = Normalize(cuts, n)
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = spanAt(cuts, n, i)
	}
	return spans
}

// SpanAt returns the span owned by group i of n.
func SpanAt(cuts []float64, n, i int) Span {
	if n <= 1 || i < 0 || i >= n {
		return Whole
	}
	return spanAt(Normalize(cuts, n), n, i)
}

func spanAt(cuts []float64, n, i int) Span {
	s := Whole
	if i > 0 {
		s.Start = cuts[i-1]
	}
	if i < n-1 {
		s.End = cuts[i]
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
