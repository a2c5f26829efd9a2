// SPDX-License-Identifier: MIT

// Package render turns a core.Snapshot into a visual or textual document.
//
// Rendering is read-only: it works on the copy returned by PrintAll and
// never touches the graph itself.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/netviz/core"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatText = "text"
)

// OutputOptions defines rendering configuration options
type OutputOptions struct {
	Format      string  // Output format (svg, dot, json, text)
	Width       float64 // Canvas width
	Height      float64 // Canvas height
	Background  string  // Background color
	NodeRadius  float64 // Node circle radius
	FontSize    float64 // Font size for labels
	ShowLabels  bool    // Show node labels
	ShowWeights bool    // Show edge distances
	Jitter      float64 // Max simplex-noise displacement of the circular layout, in pixels
	Seed        int64   // Noise seed; same seed, same picture
}

// Renderer interface defines methods that all rendering backends must implement
type Renderer interface {
	// Render creates a document for snap using the provided options
	Render(snap core.Snapshot, options *OutputOptions) ([]byte, error)

	// Name returns the name of the renderer
	Name() string

	// Description returns a description of the renderer
	Description() string
}

// NewDefaultOptions creates a default set of output options
func NewDefaultOptions(format string) *OutputOptions {
	return &OutputOptions{
		Format:      format,
		Width:       800,
		Height:      600,
		Background:  "#f8f8f8",
		NodeRadius:  14,
		FontSize:    12,
		ShowLabels:  true,
		ShowWeights: true,
	}
}

var renderers = map[string]Renderer{
	FormatSVG:  &SVGRenderer{},
	FormatDOT:  &DOTRenderer{},
	FormatJSON: &JSONRenderer{},
	FormatText: &TextRenderer{},
}

// Formats lists the supported format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for name := range renderers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// GetRenderer returns the appropriate renderer based on format
func GetRenderer(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, format, strings.Join(Formats(), ", "))
	}

	return r, nil
}

// Render validates options and renders snap with the renderer for options.Format.
func Render(snap core.Snapshot, options *OutputOptions) ([]byte, error) {
	if options == nil {
		options = NewDefaultOptions(FormatText)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	r, err := GetRenderer(options.Format)
	if err != nil {
		return nil, err
	}
	out, err := r.Render(snap, options)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Name(), err)
	}

	return out, nil
}
