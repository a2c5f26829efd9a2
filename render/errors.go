// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnsupportedFormat indicates an unknown output format name.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")

	// ErrBadOptions indicates non-positive canvas dimensions or a negative jitter.
	ErrBadOptions = errors.New("render: invalid output options")
)
