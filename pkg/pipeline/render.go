package pipeline

import (
	"fmt"

	"github.com/plotplan/plotplan/pkg/render/canvas"
	"github.com/plotplan/plotplan/pkg/render/canvas/styles"
	"github.com/plotplan/plotplan/pkg/render/diagram"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(l Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if l.IsDiagram() {
		return renderDiagram(l, opts)
	}
	return renderPlan(l, opts)
}

func renderPlan(l Layout, opts Options) (map[string][]byte, error) {
	if l.Canvas == nil {
		return nil, fmt.Errorf("plan layout missing canvas")
	}

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = canvas.RenderSVG(*l.Canvas, svgOpts...)
		case FormatPNG:
			data, err = canvas.RenderPNG(*l.Canvas, svgOpts...)
		case FormatPDF:
			data, err = canvas.RenderPDF(*l.Canvas, svgOpts...)
		case FormatJSON:
			data, err = canvas.RenderJSON(*l.Canvas)
		default:
			return nil, fmt.Errorf("unsupported plan format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderDiagram(l Layout, opts Options) (map[string][]byte, error) {
	if l.DOT == "" {
		return nil, fmt.Errorf("diagram layout missing DOT string")
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = diagram.RenderSVG(l.DOT)
		case FormatPNG:
			data, err = diagram.RenderPNG(l.DOT, canvas.DefaultPNGScale)
		case FormatPDF:
			data, err = diagram.RenderPDF(l.DOT)
		case FormatJSON:
			data, err = MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported diagram format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds canvas SVG rendering options.
func buildSVGOptions(opts Options) []canvas.SVGOption {
	var svgOpts []canvas.SVGOption

	switch opts.Style {
	case StyleBlueprint:
		svgOpts = append(svgOpts, canvas.WithStyle(styles.Blueprint{}))
	case StyleSimple:
		svgOpts = append(svgOpts, canvas.WithStyle(styles.Simple{}))
	}

	if opts.Interactive {
		svgOpts = append(svgOpts, canvas.WithInteraction())
	}

	return svgOpts
}
