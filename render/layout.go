// SPDX-License-Identifier: MIT

package render

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Position is a node center on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// noiseScale spaces nodes apart in noise space so neighbors get
// independent offsets.
const noiseScale = 0.73

// CircularLayout places nodes evenly on a circle in the given order,
// starting at twelve o'clock and going clockwise. A single node sits in
// the center. With Jitter > 0 every position is displaced by up to Jitter
// pixels per axis using simplex noise seeded with Seed.
func CircularLayout(nodes []string, options *OutputOptions) map[string]Position {
	out := make(map[string]Position, len(nodes))
	cx, cy := options.Width/2, options.Height/2
	radius := math.Min(options.Width, options.Height)/2 - options.NodeRadius - options.FontSize
	if radius < 0 {
		radius = 0
	}

	var noise opensimplex.Noise
	if options.Jitter > 0 {
		noise = opensimplex.New(options.Seed)
	}

	for i, label := range nodes {
		p := Position{X: cx, Y: cy}
		if len(nodes) > 1 {
			angle := 2*math.Pi*float64(i)/float64(len(nodes)) - math.Pi/2
			p.X += radius * math.Cos(angle)
			p.Y += radius * math.Sin(angle)
		}
		if noise != nil {
			// Eval2 is in [-1, 1].
			t := float64(i) * noiseScale
			p.X += noise.Eval2(t, 0) * options.Jitter
			p.Y += noise.Eval2(t, 100) * options.Jitter
		}
		out[label] = p
	}

	return out
}
