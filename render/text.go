// SPDX-License-Identifier: MIT

package render

import "github.com/katalvlaran/netviz/core"

// TextRenderer outputs the plain diagnostic dump.
type TextRenderer struct{}

// Name returns the name of the renderer
func (r *TextRenderer) Name() string {
	return "Text Renderer"
}

// Description returns a description of the renderer
func (r *TextRenderer) Description() string {
	return "Renders the node list and one 'A - w -> B' line per edge"
}

// Render returns snap.String(); layout options are ignored.
func (r *TextRenderer) Render(snap core.Snapshot, _ *OutputOptions) ([]byte, error) {
	return []byte(snap.String()), nil
}
