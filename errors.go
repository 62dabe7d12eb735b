package softgfx

import "errors"

// Errors returned by softgfx. Callers match them with errors.Is; returned
// errors may wrap them with context.
var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("softgfx: invalid dimensions")

	// ErrDataTooSmall is returned when supplied pixel data is shorter than
	// the surface it should back.
	ErrDataTooSmall = errors.New("softgfx: pixel data too small")

	// ErrOutOfBounds is returned when a view rectangle leaves its parent.
	ErrOutOfBounds = errors.New("softgfx: rectangle out of bounds")

	// ErrImmutableSurface is returned when drawing is requested on a
	// surface that cannot be written.
	ErrImmutableSurface = errors.New("softgfx: surface is immutable")

	// ErrTransformStackEmpty is returned by PopTransform when only the base
	// transform remains.
	ErrTransformStackEmpty = errors.New("softgfx: transform stack empty")
)
