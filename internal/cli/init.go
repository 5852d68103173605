package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plotplan/plotplan/pkg/plan"
)

// initCommand creates the init command for starting a new plan file.
func (c *CLI) initCommand() *cobra.Command {
	var (
		length float64
		width  float64
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a new plan file",
		Long:  `Create a new plan file with the given plot dimensions and no rooms. Defaults to plan.toml in the current directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := planArg(args)

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			f := plan.NewFile()
			if length > 0 {
				f.Plot.Length = length
			}
			if width > 0 {
				f.Plot.Width = width
			}

			if err := f.Save(path); err != nil {
				return err
			}

			printSuccess("Created %s", path)
			printDetail("Plot: %g x %g", f.Plot.Length, f.Plot.Width)
			printNextStep("Add a room", fmt.Sprintf("plotplan room add kitchen %s", path))
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "plot length in units (north-south)")
	cmd.Flags().Float64Var(&width, "width", 0, "plot width in units (east-west)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing plan file")

	return cmd
}
