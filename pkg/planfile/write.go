package planfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/placement"
	"github.com/matzehuels/seedbed/pkg/region"
)

type placedPlan struct {
	Name string      `json:"name,omitempty"`
	Beds []placedBed `json:"beds"`
}

type placedBed struct {
	ID         string        `json:"id"`
	Name       string        `json:"name,omitempty"`
	Shape      geom.Shape    `json:"shape"`
	Width      float64       `json:"width,omitempty"`
	Height     float64       `json:"height,omitempty"`
	Radius     float64       `json:"radius,omitempty"`
	Rotation   float64       `json:"rotation,omitempty"`
	Mode       string        `json:"mode"`
	Boundaries []float64     `json:"boundaries,omitempty"`
	Groups     []placedGroup `json:"groups"`
}

type placedGroup struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Color       string       `json:"color,omitempty"`
	Spacing     float64      `json:"spacing"`
	Span        *region.Span `json:"span,omitempty"`
	MaxQuantity int          `json:"max_quantity"`
	Placed      int          `json:"placed"`
	Positions   []geom.Point `json:"positions"`
}

// Write encodes placed beds as indented JSON and writes it to w.
func Write(w io.Writer, name string, beds []placement.Bed) error {
	out := placedPlan{Name: name, Beds: make([]placedBed, len(beds))}
	for i, bed := range beds {
		out.Beds[i] = toPlaced(bed)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes placed beds to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(path, name string, beds []placement.Bed) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, name, beds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath returns the default result path for a plan:
// "garden.toml" becomes "garden.placed.json".
func OutputPath(planPath string) string {
	return strings.TrimSuffix(planPath, filepath.Ext(planPath)) + ".placed.json"
}

func toPlaced(bed placement.Bed) placedBed {
	pb := placedBed{
		ID:       bed.ID,
		Name:     bed.Name,
		Rotation: bed.Rotation,
		Mode:     string(bed.Mode.OrDefault()),
		Groups:   make([]placedGroup, len(bed.Groups)),
	}
	switch c := bed.Container.(type) {
	case geom.Rectangle:
		pb.Shape, pb.Width, pb.Height = c.Shape(), c.Width, c.Height
	case geom.Circle:
		pb.Shape, pb.Radius = c.Shape(), c.Radius
	}

	regions := pb.Mode == string(placement.ModeRegions)
	if regions {
		pb.Boundaries = bed.Boundaries
	}
	for i, g := range bed.Groups {
		pg := placedGroup{
			ID:          g.ID,
			Name:        g.Name,
			Color:       g.Color,
			Spacing:     g.Spacing,
			MaxQuantity: g.MaxQuantity,
			Placed:      len(g.Positions),
			Positions:   g.Positions,
		}
		if pg.Positions == nil {
			pg.Positions = []geom.Point{}
		}
		if regions {
			span := region.SpanAt(bed.Boundaries, len(bed.Groups), i)
			pg.Span = &span
		}
		pb.Groups[i] = pg
	}
	return pb
}
