package frost

import (
	"image"

	"golang.org/x/image/draw"
)

// DrawTransformed draws src over dst, mapping src coordinates to dst
// coordinates through t. It is the usual way for a bitmap-backed host to
// implement Host.CaptureParentContent:
//
//	func (h *host) CaptureParentContent(target *frost.Surface, t frost.Transform) error {
//	    frost.DrawTransformed(target, h.parentBitmap, t, nil)
//	    return nil
//	}
//
// A nil interp uses draw.ApproxBiLinear. Singular transforms draw nothing.
func DrawTransformed(dst *Surface, src image.Image, t Transform, interp draw.Interpolator) {
	if dst == nil || src == nil {
		return
	}
	if _, ok := t.Invert(); !ok {
		return
	}
	if interp == nil {
		interp = draw.ApproxBiLinear
	}
	interp.Transform(dst.RGBA(), t.Aff3(), src, src.Bounds(), draw.Over, nil)
}
