package registry

import (
	"github.com/tframelib/tframe/tfconfig"
	"github.com/tframelib/tframe/tfmetrics"
)

// NewFromConfig constructs a Registry from tfconfig.Options, the same
// struct tfconfig.Load unmarshals from YAML, so construction from a
// config file or from literal Go values looks identical. recorder may
// be nil to disable metrics.
func NewFromConfig(opts tfconfig.Options, recorder tfmetrics.Recorder) *Registry {
	r := New(opts.Registry.MaxAgeDuration(), opts.Registry.SlackDuration(), recorder)
	r.SetDefaultAwaitTimeout(opts.Registry.DefaultAwaitTimeout)
	return r
}
