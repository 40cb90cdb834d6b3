// Package paint implements the object-to-image painter (spec section
// 4.6): projecting one feature's per-object values back onto the labeled
// image to form a scalar or multi-channel output image. It also offers
// Colorize, a visualization helper that maps a single-channel painted
// image through a perceptually uniform color gradient — sugar the
// measurement contract itself doesn't require, grounded on
// internal/imaging/color.go's multi-representation color result pattern.
package paint
