// Package tfconfig provides YAML-driven construction options for a
// registry.Registry: the per-edge eviction window, the extrapolation
// slack tolerance, and the default await timeout. One struct per
// concern, `yaml:"..."` tags, a single Load that reads and unmarshals
// with no further magic.
package tfconfig
