package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

// runCLI executes a command line against a fresh root command.
func runCLI(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	c := New(io.Discard, LogInfo)

	if err := runCLI(t, c, "init", path, "--length", "80", "--width", "60"); err != nil {
		t.Fatalf("init: %v", err)
	}

	f, err := plan.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Plot.Length != 80 || f.Plot.Width != 60 {
		t.Errorf("plot = %+v, want 80 x 60", f.Plot)
	}
	if len(f.Rooms) != 0 {
		t.Errorf("new plan has %d rooms, want 0", len(f.Rooms))
	}

	// A second init without --force must not clobber the file.
	if err := runCLI(t, c, "init", path); err == nil {
		t.Error("init over existing file should fail without --force")
	}
	if err := runCLI(t, c, "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestRoomAddAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	c := New(io.Discard, LogInfo)

	if err := runCLI(t, c, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := runCLI(t, c, "room", "add", "kitchen", path, "--length", "14", "--width", "11"); err != nil {
		t.Fatalf("room add kitchen: %v", err)
	}
	if err := runCLI(t, c, "room", "add", "master_bedroom", path, "--washroom"); err != nil {
		t.Fatalf("room add master_bedroom: %v", err)
	}

	f, err := plan.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(f.Rooms) != 2 {
		t.Fatalf("file has %d entries, want 2", len(f.Rooms))
	}
	if f.Rooms[0].Length != 14 || f.Rooms[0].Width != 11 {
		t.Errorf("kitchen size = %g x %g, want 14 x 11", f.Rooms[0].Length, f.Rooms[0].Width)
	}
	if f.Rooms[1].AttachedWashroom == nil || !*f.Rooms[1].AttachedWashroom {
		t.Error("master bedroom entry should record the washroom preference")
	}

	// The replayed plan derives the washroom room.
	p, err := f.Build(catalog.Default())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("built plan has %d rooms, want 3 (washroom derived)", p.Len())
	}

	if err := runCLI(t, c, "room", "remove", "2", path); err != nil {
		t.Fatalf("room remove: %v", err)
	}
	f, err = plan.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile after remove: %v", err)
	}
	if len(f.Rooms) != 1 || f.Rooms[0].Type != "kitchen" {
		t.Errorf("after remove: %+v, want only the kitchen entry", f.Rooms)
	}

	if err := runCLI(t, c, "room", "remove", "9", path); err == nil {
		t.Error("removing a missing entry should fail")
	}
	if err := runCLI(t, c, "room", "remove", "x", path); err == nil {
		t.Error("non-numeric index should fail")
	}
}

func TestRoomAddUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	c := New(io.Discard, LogInfo)

	if err := runCLI(t, c, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := runCLI(t, c, "room", "add", "garage", path); err == nil {
		t.Fatal("unknown room type should fail")
	}

	// The failed add must not be written to disk.
	f, err := plan.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(f.Rooms) != 0 {
		t.Errorf("failed add persisted %d entries", len(f.Rooms))
	}
}

func TestRoomCombinedLiving(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	c := New(io.Discard, LogInfo)

	if err := runCLI(t, c, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := runCLI(t, c, "room", "add", "living_room", path); err != nil {
		t.Fatalf("first living room: %v", err)
	}
	if err := runCLI(t, c, "room", "add", "living_room", path, "--combined"); err != nil {
		t.Fatalf("second living room: %v", err)
	}

	f, err := plan.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p, err := f.Build(catalog.Default())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rooms := p.Rooms()
	if len(rooms) != 1 || rooms[0].Type != catalog.TypeCommonArea {
		t.Errorf("combined living rooms = %+v, want a single common area", rooms)
	}
}

func TestRoomListMissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := runCLI(t, c, "room", "list", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("expected error for missing plan file")
	}
	if !strings.Contains(err.Error(), "missing.toml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestRoomTypes(t *testing.T) {
	// room types only reads the catalog, it needs no plan file
	c := New(io.Discard, LogInfo)
	if err := runCLI(t, c, "room", "types"); err != nil {
		t.Errorf("room types: %v", err)
	}
}
