package color

// Format identifies a packed 32-bit pixel layout.
type Format uint8

const (
	// ARGB is straight alpha, alpha in the high byte.
	ARGB Format = iota
	// RGBA is straight alpha, alpha in the low byte.
	RGBA
	// ARGBPremultiplied is premultiplied alpha, alpha in the high byte.
	// This is the surface storage format.
	ARGBPremultiplied
	// RGBAPremultiplied is premultiplied alpha, alpha in the low byte.
	RGBAPremultiplied
)

func (f Format) premultiplied() bool {
	return f == ARGBPremultiplied || f == RGBAPremultiplied
}

func (f Format) alphaLow() bool {
	return f == RGBA || f == RGBAPremultiplied
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f <= RGBAPremultiplied
}

// Convert rewrites pix in place from one format to another.
//
// The conversion runs in at most three steps: channel order to ARGB, alpha
// premultiplication change, channel order to the target. It never allocates.
// Unknown formats leave pix unchanged.
func Convert(from, to Format, pix []uint32) {
	if from == to || !from.Valid() || !to.Valid() {
		return
	}
	if from.alphaLow() {
		for i, p := range pix {
			pix[i] = FromRGBA(p)
		}
	}
	switch {
	case from.premultiplied() && !to.premultiplied():
		for i, p := range pix {
			pix[i] = Unpremultiply(p)
		}
	case !from.premultiplied() && to.premultiplied():
		for i, p := range pix {
			pix[i] = Premultiply(p)
		}
	}
	if to.alphaLow() {
		for i, p := range pix {
			pix[i] = ToRGBA(p)
		}
	}
}
