package planfile

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/seedbed/pkg/errors"
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
	"github.com/matzehuels/seedbed/pkg/placement"
	"github.com/matzehuels/seedbed/pkg/region"
)

// PlacementBeds converts the plan into placement beds. Missing IDs are filled
// with random UUIDs and missing boundaries with an even split. Boundaries of
// the wrong count or order are normalized like any dragged divider and
// reported on logger, which may be nil. Positions are left empty; run the
// beds through [placement.Recompute] or a pipeline runner.
func (p *Plan) PlacementBeds(logger *log.Logger) ([]placement.Bed, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var fields []string
	beds := make([]placement.Bed, 0, len(p.Beds))
	for i, spec := range p.Beds {
		bed, errs := spec.bed(fmt.Sprintf("beds[%d]", i), logger)
		fields = append(fields, errs...)
		beds = append(beds, bed)
	}
	if len(fields) > 0 {
		return nil, errors.Wrap(errors.ErrCodeInvalidPlan, &errors.FieldError{Fields: fields}, "plan does not validate")
	}
	return beds, nil
}

func (s BedSpec) bed(path string, logger *log.Logger) (placement.Bed, []string) {
	var fields []string

	bed := placement.Bed{
		ID:       s.ID,
		Name:     s.Name,
		Rotation: s.Rotation,
	}
	if bed.ID == "" {
		bed.ID = uuid.NewString()
	}

	switch geom.Shape(s.Shape) {
	case geom.ShapeCircle:
		bed.Container = geom.Circle{Radius: s.Radius}
	case geom.ShapeRectangle:
		bed.Container = geom.Rectangle{Width: s.Width, Height: s.Height}
	default:
		fields = append(fields, fmt.Sprintf("%s.shape: unknown shape %q", path, s.Shape))
	}

	mode, err := placement.ParseMode(s.Mode)
	if err != nil {
		fields = append(fields, fmt.Sprintf("%s.mode: %s", path, errors.UserMessage(err)))
	}
	bed.Mode = mode

	bed.Groups = make([]placement.PlantGroup, len(s.Groups))
	for j, g := range s.Groups {
		group, errs := g.group(fmt.Sprintf("%s.groups[%d]", path, j))
		fields = append(fields, errs...)
		bed.Groups[j] = group
	}

	n := len(bed.Groups)
	bed.Boundaries = region.Normalize(s.Boundaries, n)
	switch {
	case len(s.Boundaries) == 0:
	case len(s.Boundaries) != n-1:
		logger.Warn("boundary count does not match groups, splitting evenly",
			"path", path, "groups", n, "boundaries", len(s.Boundaries), "using", bed.Boundaries)
	case !slices.Equal(s.Boundaries, bed.Boundaries):
		logger.Warn("boundaries adjusted", "path", path, "given", s.Boundaries, "using", bed.Boundaries)
	}

	return bed, fields
}

func (s GroupSpec) group(path string) (placement.PlantGroup, []string) {
	var fields []string

	g := placement.PlantGroup{
		ID:              s.ID,
		Name:            s.Name,
		Color:           s.Color,
		Spacing:         s.Spacing,
		DesiredQuantity: s.Quantity,
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	// An empty pattern stays empty so region beds can pick the denser lattice.
	if s.Pattern != "" {
		kind, err := pattern.ParseKind(s.Pattern)
		if err != nil {
			fields = append(fields, fmt.Sprintf("%s.pattern: %v", path, err))
		}
		g.Pattern = kind
	}

	if s.Fill != "" {
		method, err := fill.ParseMethod(s.Fill)
		if err != nil {
			fields = append(fields, fmt.Sprintf("%s.fill: %v", path, err))
		}
		g.Fill = fill.Spec{Method: method, Value: s.FillValue}
	}

	return g, fields
}
