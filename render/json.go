// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"

	"github.com/katalvlaran/netviz/core"
)

// JSONRenderer outputs raw JSON format
type JSONRenderer struct{}

// Name returns the name of the renderer
func (r *JSONRenderer) Name() string {
	return "JSON Renderer"
}

// Description returns a description of the renderer
func (r *JSONRenderer) Description() string {
	return "Renders the snapshot with layout coordinates as JSON for custom visualizations"
}

type jsonNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Degree int     `json:"degree"`
}

type jsonGraph struct {
	Snapshot string            `json:"snapshot"`
	Nodes    []jsonNode        `json:"nodes"`
	Edges    []core.EdgeRecord `json:"edges"`
	Metadata map[string]any    `json:"metadata"`
}

// Render creates a JSON representation of the snapshot
func (r *JSONRenderer) Render(snap core.Snapshot, options *OutputOptions) ([]byte, error) {
	pos := CircularLayout(snap.Nodes, options)
	degree := make(map[string]int, len(snap.Nodes))
	for _, e := range snap.Edges {
		degree[e.A]++
		degree[e.B]++
	}

	data := jsonGraph{
		Snapshot: snap.ID,
		Nodes:    make([]jsonNode, 0, len(snap.Nodes)),
		Edges:    make([]core.EdgeRecord, 0, len(snap.Edges)),
		Metadata: map[string]any{
			"width":     options.Width,
			"height":    options.Height,
			"nodeCount": len(snap.Nodes),
			"edgeCount": len(snap.Edges),
		},
	}
	for _, label := range snap.Nodes {
		p := pos[label]
		data.Nodes = append(data.Nodes, jsonNode{ID: label, X: p.X, Y: p.Y, Degree: degree[label]})
	}
	data.Edges = append(data.Edges, snap.Edges...)

	return json.MarshalIndent(data, "", "  ")
}
