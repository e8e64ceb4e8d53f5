// Package interpolate provides the interpolation kernel shared by every
// EdgeBuffer: linear interpolation of translation, spherical linear
// interpolation (SLERP) of rotation, and the fractional-position
// computation u = (t - a) / (b - a) used by both.
//
// Endpoint exactness is a hard contract: u == 0 must return a's value
// bit-identically, u == 1 must return b's value bit-identically. Every
// function here assumes a <= t <= b has already been validated by the
// caller (edgebuffer.Buffer.Sample); this package does not know about
// buffers, edges, or frames.
package interpolate
