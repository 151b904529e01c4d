// Package filter implements the blur primitives behind the frosted-glass
// compositor.
//
// All functions operate on premultiplied *image.RGBA buffers and sample
// outside the buffer by clamping to the nearest edge pixel, so colour never
// wraps around from the opposite edge. Every channel, alpha included, is
// convolved with the same kernel.
//
// Kernels are separable: a horizontal pass writes into a float32 scratch
// buffer and a vertical pass writes the result back as 8-bit values. Both
// passes are split into row ranges and handed to a [Runner], which lets the
// caller decide whether rows run inline or on a worker pool. Either way the
// call blocks until the destination is complete.
package filter
