package transform

import "errors"

var (
	// ErrTransformNotFound is returned when a transform is not found in
	// the registry.
	ErrTransformNotFound = errors.New("transform not found")

	// ErrNotApplicable is returned by Apply when a transform's Init
	// refuses the color ranges in play.
	ErrNotApplicable = errors.New("transform not applicable to these color ranges")
)
