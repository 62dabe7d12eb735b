// Package filter provides whole-surface image filters for softgfx.
//
// Filters work on premultiplied ARGB surfaces:
//   - Blur, a separable box blur with running sums; several passes
//     approximate a Gaussian
//   - DropShadow, a blurred and tinted silhouette composited under its
//     source
//   - Reflection, a mirrored copy of the bottom rows fading downwards
//   - ColorMatrix, a 4×5 matrix over straight colour channels
//
// Filter values own their scratch buffers. A value may be reused across
// calls but must not be shared between goroutines.
package filter
