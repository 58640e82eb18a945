package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedbed/pkg/pipeline"
	"github.com/matzehuels/seedbed/pkg/planfile"
)

// planCommand creates the plan command for placing every bed of a plan file.
func (c *CLI) planCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "plan [plan.toml|plan.yaml|plan.json]",
		Short: "Place every bed of a garden plan",
		Long: `Place every bed of a garden plan.

The plan is validated before anything is computed and every invalid field is
reported. Beds are recomputed in parallel and unchanged beds are served from
the cache. The result is written next to the plan as <name>.placed.json
unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Workers: workers, Refresh: refresh}
			return c.runPlan(cmd.Context(), cmd.ErrOrStderr(), args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <plan>.placed.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute every bed and refresh the cache")
	cmd.Flags().IntVarP(&workers, "workers", "w", pipeline.DefaultWorkers, "beds to compute in parallel")

	return cmd
}

// runPlan loads, places and writes a plan.
func (c *CLI) runPlan(ctx context.Context, stderr io.Writer, input, output string, noCache bool, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	out := printer{w: stderr}

	prog := newProgress(logger)
	plan, err := planfile.Import(input)
	if err != nil {
		return err
	}
	beds, err := plan.PlacementBeds(logger)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Loaded %s", plural(len(beds), "bed")))

	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	spinner := newSpinner(ctx, stderr, fmt.Sprintf("Placing %s...", plural(len(beds), "bed")))
	spinner.Start()

	opts.Logger = logger
	placed, stats, err := runner.RecomputeAll(ctx, beds, opts)
	if err != nil {
		spinner.StopWithError("Placement failed")
		return fmt.Errorf("plan: %w", err)
	}
	spinner.Stop()

	if output == "" {
		output = planfile.OutputPath(input)
	}
	if err := planfile.Export(output, plan.Name, placed); err != nil {
		return err
	}

	title := input
	if plan.Name != "" {
		title = plan.Name
	}
	out.success("Placed %s", StyleTitle.Render(title))
	out.stats(stats.Beds, stats.Points, stats.Beds > 0 && stats.CacheHits == stats.Beds)
	for _, bed := range placed {
		name := bed.Name
		if name == "" {
			name = bed.ID
		}
		if len(bed.Groups) > 0 && bed.PointCount() == 0 {
			out.warning("%s: no plant fits, check spacing and bed size", name)
			continue
		}
		out.detail("%s: %s in %s", name, plural(bed.PointCount(), "plant"), plural(len(bed.Groups), "group"))
	}
	out.file(output)
	return nil
}
