package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotplan/plotplan/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple outputs)
	vizTypes    []string // visualization types: "plan", "diagram"
	formats     []string // output formats: "svg", "png", "pdf", "json"
	style       string   // visual style: "simple" or "blueprint"
	scale       float64  // canvas scale in pixels per plot unit (0 = default)
	detailed    bool     // show room sizes in diagram labels
	interactive bool     // embed hover styles in SVG output
	noCache     bool     // disable the layout/artifact cache
	catalog     string   // catalog override file
}

// renderCommand creates the render command for generating floor plan output.
// It supports the scaled plan canvas and the Graphviz structure diagram,
// in SVG, PNG, PDF, and JSON formats.
func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	opts := renderOpts{style: pipeline.DefaultStyle}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a plan file to SVG, PNG, PDF, or JSON",
		Long: `Render a plan file to one or more output formats.

The plan type draws the scaled top-down canvas; the diagram type draws a
Graphviz view of the plan's structure, grouped by compass direction.
Layouts and artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			for _, vt := range opts.vizTypes {
				if err := pipeline.ValidateVizType(vt); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), planArg(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): plan (default), diagram (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: simple (default), blueprint")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "canvas scale in pixels per plot unit")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in diagram labels")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "embed hover styles in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "path to a catalog override file")

	return cmd
}

// runRender executes the pipeline once per visualization type and writes
// the resulting artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	cat, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	base := basePath(opts.output, input)
	multi := len(opts.vizTypes) > 1

	for _, vizType := range opts.vizTypes {
		pOpts := pipeline.Options{
			PlanPath:    input,
			VizType:     vizType,
			Scale:       opts.scale,
			Detailed:    opts.detailed,
			Formats:     opts.formats,
			Style:       opts.style,
			Interactive: opts.interactive,
			Logger:      c.Logger,
			Catalog:     cat,
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", vizType))
		spinner.Start()

		result, err := runner.Execute(ctx, pOpts)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Rendering %s failed", vizType))
			return fmt.Errorf("render %s: %w", vizType, err)
		}
		spinner.Stop()

		if err := writeArtifacts(result, opts, vizType, base, multi); err != nil {
			return err
		}
		printStats(len(result.State.Rooms), result.CacheInfo.RenderHit)
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.vizTypes)*len(opts.formats)))
	return nil
}

// writeArtifacts writes every rendered format of a single visualization
// type. With one type and one format requested, a bare --output path is
// honored verbatim; "-" writes to stdout.
func writeArtifacts(result *pipeline.Result, opts *renderOpts, vizType, base string, multi bool) error {
	for _, format := range opts.formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return fmt.Errorf("%s/%s: no artifact produced", vizType, format)
		}

		path := artifactPath(opts, vizType, format, base, multi)
		if path == "-" {
			path = ""
		}
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}

		if path != "" {
			printFile(path)
		}
	}
	return nil
}

// artifactPath builds the output path for one type/format combination.
func artifactPath(opts *renderOpts, vizType, format, base string, multi bool) string {
	if len(opts.formats) == 1 && !multi && opts.output != "" {
		return opts.output
	}
	if multi {
		return fmt.Sprintf("%s_%s.%s", base, vizType, format)
	}
	return fmt.Sprintf("%s.%s", base, format)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
