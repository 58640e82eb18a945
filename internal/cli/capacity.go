package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedbed/pkg/pattern"
	"github.com/matzehuels/seedbed/pkg/pipeline"
	"github.com/matzehuels/seedbed/pkg/placement"
)

// capacityCommand creates the capacity command.
func (c *CLI) capacityCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Report how many plants fit in a bed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(cmd.Context()))
			n, err := runner.Capacity(opts)
			if err != nil {
				return fmt.Errorf("capacity: %w", err)
			}
			container, err := opts.Container()
			if err != nil {
				return err
			}

			out := printer{w: cmd.OutOrStdout()}
			out.keyValue("bed", opts.String())
			out.keyValue("capacity", StyleNumber.Render(strconv.Itoa(n)))

			grid := placement.CalculateBedCapacity(container, opts.Spacing, pattern.Grid)
			hex := placement.CalculateBedCapacity(container, opts.Spacing, pattern.Hexagonal)
			out.detail("grid %d · hexagonal %d", grid, hex)
			return nil
		},
	}

	addShapeFlags(cmd, &opts)
	return cmd
}
