package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pipeline"
)

// addShapeFlags registers the bed geometry flags shared by place and capacity.
func addShapeFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Shape, "shape", pipeline.DefaultShape, "bed shape: rectangle, circle")
	cmd.Flags().Float64Var(&opts.Width, "width", pipeline.DefaultWidth, "rectangle width")
	cmd.Flags().Float64Var(&opts.Height, "height", pipeline.DefaultHeight, "rectangle height")
	cmd.Flags().Float64Var(&opts.Radius, "radius", pipeline.DefaultRadius, "circle radius")
	cmd.Flags().Float64VarP(&opts.Spacing, "spacing", "s", pipeline.DefaultSpacing, "minimum distance between plants")
	cmd.Flags().StringVarP(&opts.Pattern, "pattern", "p", pipeline.DefaultPattern, "packing pattern: grid, hexagonal, auto")
}

// placeCommand creates the place command for a single plant group.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place one plant group in a bed",
		Long: `Place one plant group in a bed described by flags.

The positions are printed as JSON, in bed units with the origin at the bed
center and y growing downwards. Use --fill to keep only part of the lattice:

  seedbed place --shape circle --radius 24 --spacing 6 --pattern hexagonal
  seedbed place --width 96 --height 48 --fill rows --value 2
  seedbed place --fill percentage --value 25 -o quarter.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runPlace(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, output, noCache)
		},
	}

	addShapeFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Fill, "fill", pipeline.DefaultFill, "fill method: auto, count, rows, percentage")
	cmd.Flags().Float64Var(&opts.FillValue, "value", 0, "fill value (count, rows or percentage)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write positions to this file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPlace computes the placement and writes it as JSON.
func (c *CLI) runPlace(ctx context.Context, stdout, stderr io.Writer, opts pipeline.Options, output string, noCache bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	points, hit, err := runner.Place(ctx, opts)
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}
	if points == nil {
		points = []geom.Point{}
	}

	if output == "" {
		return writeJSON(stdout, points)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := writeJSON(f, points); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	out := printer{w: stderr}
	out.success("Placed %s", opts.String())
	out.stats(0, len(points), hit)
	out.file(output)
	return nil
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
