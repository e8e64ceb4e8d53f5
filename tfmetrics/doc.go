// Package tfmetrics provides optional Prometheus instrumentation for a
// registry.Registry: counts of inserts, synchronous queries, and awaits
// by outcome. It is wired as an injectable Recorder so the registry
// core never imports a metrics library directly — a nil Recorder
// disables metrics entirely at no cost beyond a nil check.
package tfmetrics
