package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotplan/plotplan/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"json only", "json", []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestParseVizTypes(t *testing.T) {
	got := parseVizTypes("")
	if len(got) != 1 || got[0] != pipeline.VizTypePlan {
		t.Errorf("parseVizTypes(\"\") = %v, want [plan]", got)
	}

	got = parseVizTypes("plan,diagram")
	if len(got) != 2 || got[0] != "plan" || got[1] != "diagram" {
		t.Errorf("parseVizTypes(\"plan,diagram\") = %v", got)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "plan.toml", "plan"},
		{"derive from nested input", "", "plans/house.toml", "plans/house"},
		{"strip format extension", "out.svg", "plan.toml", "out"},
		{"keep other extension", "out.backup", "plan.toml", "out.backup"},
		{"plain output", "out", "plan.toml", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	single := &renderOpts{output: "custom.svg", formats: []string{"svg"}}
	if got := artifactPath(single, "plan", "svg", "custom", false); got != "custom.svg" {
		t.Errorf("single format output = %q, want custom.svg", got)
	}

	multiFormat := &renderOpts{formats: []string{"svg", "json"}}
	if got := artifactPath(multiFormat, "plan", "json", "house", false); got != "house.json" {
		t.Errorf("multi format path = %q, want house.json", got)
	}

	multiType := &renderOpts{formats: []string{"svg"}}
	if got := artifactPath(multiType, "diagram", "svg", "house", true); got != "house_diagram.svg" {
		t.Errorf("multi type path = %q, want house_diagram.svg", got)
	}
}

func TestRenderCommandRejectsInvalidFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)

	for _, args := range [][]string{
		{"render", "plan.toml", "-f", "bmp"},
		{"render", "plan.toml", "-t", "elevation"},
		{"render", "plan.toml", "--style", "neon"},
	} {
		root := c.RootCommand()
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		if err := root.Execute(); err == nil {
			t.Errorf("args %v: expected validation error", args)
		}
	}
}

func TestRenderEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	planPath := filepath.Join(dir, "plan.toml")

	c := New(io.Discard, LogInfo)
	run := func(args ...string) error {
		root := c.RootCommand()
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		return root.Execute()
	}

	if err := run("init", planPath); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := run("room", "add", "kitchen", planPath); err != nil {
		t.Fatalf("room add: %v", err)
	}
	if err := run("render", planPath, "-f", "svg,json", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "plan.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "1 Kitchen") {
		t.Error("svg missing kitchen label")
	}

	if _, err := os.Stat(filepath.Join(dir, "plan.json")); err != nil {
		t.Errorf("json artifact missing: %v", err)
	}
}

func TestRenderMissingPlanFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", filepath.Join(dir, "missing.toml"), "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("expected error for missing plan file")
	}
}
