// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/katalvlaran/netviz/core"
)

// SVGRenderer outputs SVG format
type SVGRenderer struct{}

// Name returns the name of the renderer
func (r *SVGRenderer) Name() string {
	return "SVG Renderer"
}

// Description returns a description of the renderer
func (r *SVGRenderer) Description() string {
	return "Renders the graph on a circular layout as Scalable Vector Graphics"
}

// Render creates an SVG representation of the snapshot. Edges are drawn
// first so node circles cover the line ends.
func (r *SVGRenderer) Render(snap core.Snapshot, options *OutputOptions) ([]byte, error) {
	var buf bytes.Buffer
	pos := CircularLayout(snap.Nodes, options)

	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, options.Width, options.Height, options.Width, options.Height, html.EscapeString(options.Background))

	buf.WriteString(`<g class="edges" stroke="#666666" stroke-width="1.5">` + "\n")
	for _, e := range snap.Edges {
		a, okA := pos[e.A]
		b, okB := pos[e.B]
		if !okA || !okB {
			return nil, fmt.Errorf("edge %s-%s references a missing node", e.A, e.B)
		}
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", a.X, a.Y, b.X, b.Y)
		if options.ShowWeights {
			midX, midY := (a.X+b.X)/2, (a.Y+b.Y)/2
			fmt.Fprintf(&buf, `  <text class="weight" x="%.2f" y="%.2f" font-size="%g" fill="#aa3333" stroke="none" text-anchor="middle">%s</text>`+"\n",
				midX, midY, options.FontSize*0.9, core.FormatWeight(e.Weight))
		}
	}
	buf.WriteString("</g>\n")

	buf.WriteString(`<g class="nodes">` + "\n")
	for _, label := range snap.Nodes {
		p := pos[label]
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%g" fill="#4285F4" stroke="#ffffff" stroke-width="1.5"/>`+"\n",
			p.X, p.Y, options.NodeRadius)
		if options.ShowLabels {
			fmt.Fprintf(&buf, `  <text class="label" x="%.2f" y="%.2f" font-size="%g" fill="#ffffff" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				p.X, p.Y, options.FontSize, html.EscapeString(label))
		}
	}
	buf.WriteString("</g>\n</svg>\n")

	return buf.Bytes(), nil
}
