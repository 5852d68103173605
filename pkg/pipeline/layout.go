package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/plotplan/plotplan/pkg/plan"
	"github.com/plotplan/plotplan/pkg/render/canvas"
	"github.com/plotplan/plotplan/pkg/render/diagram"
)

// Layout is the serializable output of the layout stage. Exactly one of
// Canvas or DOT is populated, depending on the visualization type.
type Layout struct {
	VizType string         `json:"viz_type"`
	Canvas  *canvas.Canvas `json:"canvas,omitempty"`
	DOT     string         `json:"dot,omitempty"`
}

// IsDiagram returns true for Graphviz diagram layouts.
func (l Layout) IsDiagram() bool {
	return l.VizType == VizTypeDiagram
}

// MarshalLayout serializes a layout for caching or API responses.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	if l.VizType == VizTypeDiagram && l.DOT == "" {
		return Layout{}, fmt.Errorf("diagram layout missing DOT string")
	}
	if l.VizType == VizTypePlan && l.Canvas == nil {
		return Layout{}, fmt.Errorf("plan layout missing canvas")
	}
	return l, nil
}

// ComputeLayout computes a layout from a plan snapshot.
func ComputeLayout(s plan.State, opts Options) (Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return Layout{}, err
	}

	if opts.IsDiagram() {
		return Layout{
			VizType: VizTypeDiagram,
			DOT:     diagram.ToDOT(s, diagram.Options{Detailed: opts.Detailed}),
		}, nil
	}

	var buildOpts []canvas.Option
	if opts.Scale > 0 {
		buildOpts = append(buildOpts, canvas.WithScale(opts.Scale))
	}
	c := canvas.Build(s, buildOpts...)
	return Layout{VizType: VizTypePlan, Canvas: &c}, nil
}
