// SPDX-License-Identifier: MIT

package render

import "fmt"

// Validate reports canvas settings that cannot produce a picture.
func (o *OutputOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas %gx%g", ErrBadOptions, o.Width, o.Height)
	}
	if o.NodeRadius < 0 || o.FontSize < 0 {
		return fmt.Errorf("%w: radius=%g font=%g", ErrBadOptions, o.NodeRadius, o.FontSize)
	}
	if o.Jitter < 0 {
		return fmt.Errorf("%w: jitter=%g", ErrBadOptions, o.Jitter)
	}

	return nil
}
