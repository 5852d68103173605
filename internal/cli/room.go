package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

// roomCommand creates the room management command.
func (c *CLI) roomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Add, remove, and list rooms in a plan file",
	}

	cmd.AddCommand(c.roomAddCommand())
	cmd.AddCommand(c.roomRemoveCommand())
	cmd.AddCommand(c.roomListCommand())
	cmd.AddCommand(c.roomTypesCommand())

	return cmd
}

// roomAddCommand creates the "room add" subcommand.
//
// Size and preference flags are tri-state: a flag that was not passed
// leaves the rule's default in effect, so "--inside=false" and an omitted
// --inside flag mean different things.
func (c *CLI) roomAddCommand() *cobra.Command {
	var (
		length   float64
		width    float64
		washroom bool
		open     bool
		inside   bool
		combined bool
		catPath  string
	)

	cmd := &cobra.Command{
		Use:   "add <type> [file]",
		Short: "Add a room to a plan file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := planArg(args[1:])

			cat, err := loadCatalog(catPath)
			if err != nil {
				return err
			}

			f, err := plan.LoadFile(path)
			if err != nil {
				return err
			}

			entry := plan.Entry{Type: args[0], Length: length, Width: width}
			if cmd.Flags().Changed("washroom") {
				entry.AttachedWashroom = &washroom
			}
			if cmd.Flags().Changed("open") {
				entry.Open = &open
			}
			if cmd.Flags().Changed("inside") {
				entry.Inside = &inside
			}
			if cmd.Flags().Changed("combined") {
				entry.Combined = &combined
			}
			f.Rooms = append(f.Rooms, entry)

			// Replaying the whole file validates the new entry before
			// anything is written.
			p, err := f.Build(cat)
			if err != nil {
				return err
			}
			if err := f.Save(path); err != nil {
				return err
			}

			printSuccess("Added %s to %s", catalog.RoomType(args[0]).DisplayName(), path)
			printRooms(p)
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "room length in units (0 = rule default)")
	cmd.Flags().Float64Var(&width, "width", 0, "room width in units (0 = rule default)")
	cmd.Flags().BoolVar(&washroom, "washroom", false, "attach a washroom (master bedroom)")
	cmd.Flags().BoolVar(&open, "open", false, "open kitchen")
	cmd.Flags().BoolVar(&inside, "inside", true, "staircase inside the house")
	cmd.Flags().BoolVar(&combined, "combined", false, "combine living and dining into a common area")
	cmd.Flags().StringVar(&catPath, "catalog", "", "path to a catalog override file")

	return cmd
}

// roomRemoveCommand creates the "room remove" subcommand.
func (c *CLI) roomRemoveCommand() *cobra.Command {
	var catPath string

	cmd := &cobra.Command{
		Use:   "remove <index> [file]",
		Short: "Remove a room entry from a plan file",
		Long:  `Remove the Nth room entry (1-based, in file order) from a plan file. Derived rooms such as attached washrooms disappear with their parent entry.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := planArg(args[1:])

			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room index %q", args[0])
			}

			cat, err := loadCatalog(catPath)
			if err != nil {
				return err
			}

			f, err := plan.LoadFile(path)
			if err != nil {
				return err
			}
			if idx < 1 || idx > len(f.Rooms) {
				return fmt.Errorf("no room entry %d (plan has %d)", idx, len(f.Rooms))
			}

			removed := f.Rooms[idx-1]
			f.Rooms = append(f.Rooms[:idx-1], f.Rooms[idx:]...)

			p, err := f.Build(cat)
			if err != nil {
				return err
			}
			if err := f.Save(path); err != nil {
				return err
			}

			printSuccess("Removed %s from %s", catalog.RoomType(removed.Type).DisplayName(), path)
			printRooms(p)
			return nil
		},
	}

	cmd.Flags().StringVar(&catPath, "catalog", "", "path to a catalog override file")

	return cmd
}

// roomListCommand creates the "room list" subcommand.
func (c *CLI) roomListCommand() *cobra.Command {
	var catPath string

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the rooms in a plan file with their placements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := planArg(args)

			cat, err := loadCatalog(catPath)
			if err != nil {
				return err
			}

			f, err := plan.LoadFile(path)
			if err != nil {
				return err
			}
			p, err := f.Build(cat)
			if err != nil {
				return err
			}

			plot := p.Plot()
			printKeyValue("Plot", fmt.Sprintf("%g x %g", plot.Length, plot.Width))
			printRooms(p)
			return nil
		},
	}

	cmd.Flags().StringVar(&catPath, "catalog", "", "path to a catalog override file")

	return cmd
}

// roomTypesCommand creates the "room types" subcommand.
func (c *CLI) roomTypesCommand() *cobra.Command {
	var catPath string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the room types a plan can contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catPath)
			if err != nil {
				return err
			}

			for _, t := range cat.Selectable() {
				rule, err := cat.Lookup(t)
				if err != nil {
					return err
				}
				flags := make([]string, len(rule.Flags))
				for i, fl := range rule.Flags {
					flags[i] = string(fl)
				}
				line := fmt.Sprintf("%-16s %-10s %g x %g", t, rule.Direction, rule.Size.Length, rule.Size.Width)
				if len(flags) > 0 {
					line += "  [" + strings.Join(flags, ", ") + "]"
				}
				printDetail("%s", line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catPath, "catalog", "", "path to a catalog override file")

	return cmd
}

// printRooms prints one line per placed room, derived rooms included.
func printRooms(p *plan.Plan) {
	if p.Len() == 0 {
		printDetail("no rooms")
		return
	}
	for _, r := range p.Rooms() {
		printDetail("%-14s %-24s %-10s %g x %g at (%g, %g)",
			r.ID, r.Label(), r.Direction, r.Size.Length, r.Size.Width, r.Position.X, r.Position.Y)
	}
}
