// Package fill decides how many candidate positions a plant group keeps.
//
// A fill [Spec] pairs a [Method] with a numeric value:
//
//   - auto: keep every candidate
//   - count(n): keep the first min(n, len) candidates
//   - percentage(p): keep the first floor(base·p/100) candidates, where base is
//     the candidate count before any conflict filtering
//   - rows(n): regenerate the lattice with at most n lines
//
// Because rows changes how the lattice is centered, it cannot be applied to an
// existing sequence. Callers therefore hand the resolver a [Generator] that it
// may re-invoke with a line bound.
//
// The resolver never fails. Out-of-range values degrade to an empty or full
// result.
package fill

import (
	"fmt"
	"math"

	"github.com/matzehuels/seedbed/pkg/geom"
)

// Method names a fill policy.
type Method string

// Supported fill methods. The zero value behaves like Auto.
const (
	Auto       Method = "auto"
	Count      Method = "count"
	Rows       Method = "rows"
	Percentage Method = "percentage"
)

// ParseMethod converts user input into a Method. The empty string maps to Auto.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", Auto:
		return Auto, nil
	case Count, Rows, Percentage:
		return Method(s), nil
	case "percent":
		return Percentage, nil
	}
	return "", fmt.Errorf("invalid fill method: %q (must be one of: auto, count, rows, percentage)", s)
}

// Spec is a fill method with its value. Value is a count for count and rows and
// a percentage in [0, 100] for percentage; auto ignores it.
type Spec struct {
	Method Method  `json:"method,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// All keeps every candidate.
func All() Spec { return Spec{Method: Auto} }

// N keeps the first n candidates.
func N(n int) Spec { return Spec{Method: Count, Value: float64(n)} }

// InRows bounds the lattice to n lines.
func InRows(n int) Spec { return Spec{Method: Rows, Value: float64(n)} }

// Percent keeps p percent of the unfiltered candidates.
func Percent(p float64) Spec { return Spec{Method: Percentage, Value: p} }

// method returns s.Method, treating empty as Auto.
func (s Spec) method() Method {
	if s.Method == "" {
		return Auto
	}
	return s.Method
}

// IsAuto reports whether s keeps every candidate.
func (s Spec) IsAuto() bool { return s.method() == Auto }

// Lines returns the line bound for a rows spec, or 0 for every other method.
func (s Spec) Lines() int {
	if s.method() != Rows {
		return 0
	}
	return toCount(s.Value)
}

// Generator produces an ordered candidate sequence. A positive lines value
// bounds the number of lattice lines; 0 means unbounded.
type Generator func(lines int) []geom.Point

// Filter removes candidates that conflict with positions placed elsewhere.
type Filter func([]geom.Point) []geom.Point

// Resolve applies s to the candidates produced by gen.
func Resolve(gen Generator, s Spec) []geom.Point {
	return ResolveFiltered(gen, nil, s)
}

// ResolveFiltered generates candidates, removes conflicts with filter and then
// applies s. Percentages are taken of the unfiltered candidate count.
func ResolveFiltered(gen Generator, filter Filter, s Spec) []geom.Point {
	if gen == nil {
		return nil
	}
	if s.method() == Rows {
		n := s.Lines()
		if n <= 0 {
			return nil
		}
		return apply(filter, gen(n))
	}

	candidates := gen(0)
	return Truncate(apply(filter, candidates), s, len(candidates))
}

func apply(filter Filter, pts []geom.Point) []geom.Point {
	if filter == nil {
		return pts
	}
	return filter(pts)
}

// Truncate keeps the prefix of seq that s allows. base is the candidate count
// percentages are taken of. Rows specs are assumed to have been applied by the
// generator and pass seq through.
func Truncate(seq []geom.Point, s Spec, base int) []geom.Point {
	switch s.method() {
	case Count:
		return Limit(seq, toCount(s.Value))
	case Percentage:
		p := math.Max(0, math.Min(100, s.Value))
		return Limit(seq, int(math.Floor(float64(base)*p/100)))
	default:
		return seq
	}
}

// Limit returns the first n elements of seq, or seq itself when it is shorter.
func Limit(seq []geom.Point, n int) []geom.Point {
	if n <= 0 {
		return nil
	}
	if n >= len(seq) {
		return seq
	}
	return seq[:n:n]
}

func toCount(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}
