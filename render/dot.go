// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/katalvlaran/netviz/core"
)

// DOTRenderer outputs Graphviz DOT format
type DOTRenderer struct{}

// Name returns the name of the renderer
func (r *DOTRenderer) Name() string {
	return "DOT Renderer"
}

// Description returns a description of the renderer
func (r *DOTRenderer) Description() string {
	return "Renders the graph as an undirected Graphviz DOT document"
}

// Render creates an undirected DOT graph. Node positions come from the
// circular layout and are pinned with pos="x,y!" in points.
func (r *DOTRenderer) Render(snap core.Snapshot, options *OutputOptions) ([]byte, error) {
	var buf bytes.Buffer
	pos := CircularLayout(snap.Nodes, options)

	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  graph [bgcolor=%s, size=\"%g,%g\"];\n",
		strconv.Quote(options.Background), options.Width/72.0, options.Height/72.0)
	fmt.Fprintf(&buf, "  node [shape=circle, fontname=\"Arial\", fontsize=%g];\n", options.FontSize)

	for _, label := range snap.Nodes {
		p := pos[label]
		// DOT's y axis points up.
		fmt.Fprintf(&buf, "  %s [pos=\"%.2f,%.2f!\"];\n", strconv.Quote(label), p.X, options.Height-p.Y)
	}

	for _, e := range snap.Edges {
		w := core.FormatWeight(e.Weight)
		if options.ShowWeights {
			fmt.Fprintf(&buf, "  %s -- %s [label=%q, weight=%s];\n", strconv.Quote(e.A), strconv.Quote(e.B), w, w)
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s [weight=%s];\n", strconv.Quote(e.A), strconv.Quote(e.B), w)
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
