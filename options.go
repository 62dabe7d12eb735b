package softgfx

import "log/slog"

// GraphicsOption configures a Graphics during creation.
//
// Example:
//
//	g, err := surface.NewGraphics(
//	    softgfx.WithInterpolation(softgfx.NearestNeighbor),
//	    softgfx.WithScratchCapacity(2048),
//	)
type GraphicsOption func(*graphicsOptions)

type graphicsOptions struct {
	logger        *slog.Logger
	scratch       int
	interpolation Interpolation
	blendMode     BlendMode
}

func defaultOptions() graphicsOptions {
	return graphicsOptions{
		interpolation: Bilinear,
		blendMode:     BlendSrcOver,
	}
}

// WithLogger sets a logger for this Graphics only, overriding the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) GraphicsOption {
	return func(o *graphicsOptions) {
		o.logger = l
	}
}

// WithScratchCapacity preallocates the row buffer used by texture draws,
// in pixels. The buffer still grows on demand.
func WithScratchCapacity(n int) GraphicsOption {
	return func(o *graphicsOptions) {
		if n > 0 {
			o.scratch = n
		}
	}
}

// WithInterpolation sets the initial interpolation mode. Reset restores
// Bilinear.
func WithInterpolation(i Interpolation) GraphicsOption {
	return func(o *graphicsOptions) {
		o.interpolation = i
	}
}

// WithBlendMode sets the initial blend mode. Reset restores BlendSrcOver.
func WithBlendMode(m BlendMode) GraphicsOption {
	return func(o *graphicsOptions) {
		o.blendMode = m
	}
}
