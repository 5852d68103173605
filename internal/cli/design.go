package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plotplan/plotplan/pkg/plan"
)

// designCommand creates the design command for interactive plan editing.
func (c *CLI) designCommand() *cobra.Command {
	var catPath string

	cmd := &cobra.Command{
		Use:   "design [file]",
		Short: "Edit a plan interactively in the terminal",
		Long: `Edit a plan interactively in the terminal.

The editor shows the plan file's room entries alongside the placements
they produce. New rooms pick their type from the catalog, with size and
preference prompts matching the type's rules. An existing plan file is
loaded; a missing one starts from the default plot.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesign(planArg(args), catPath)
		},
	}

	cmd.Flags().StringVar(&catPath, "catalog", "", "path to a catalog override file")

	return cmd
}

// runDesign starts the editor and persists any unsaved changes on exit.
func (c *CLI) runDesign(path, catPath string) error {
	cat, err := loadCatalog(catPath)
	if err != nil {
		return err
	}

	f := plan.NewFile()
	if _, err := os.Stat(path); err == nil {
		f, err = plan.LoadFile(path)
		if err != nil {
			return err
		}
	}

	final, err := tea.NewProgram(NewDesignModel(path, cat, f)).Run()
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}

	m, ok := final.(DesignModel)
	if !ok {
		return nil
	}
	if m.Dirty {
		if err := m.File.Save(path); err != nil {
			return err
		}
		m.Saved = true
	}
	if m.Saved {
		printSuccess("Saved %s", path)
		printStats(len(m.File.Rooms), false)
		printNextStep("Render it", fmt.Sprintf("plotplan render %s", path))
	}
	return nil
}
