package tfconfig

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tframelib/tframe/vecmath"
)

// Options configures a registry.Registry at construction time.
type Options struct {
	Registry RegistryOptions `yaml:"registry"`
}

// RegistryOptions controls buffer eviction and await timing.
type RegistryOptions struct {
	// MaxAge bounds every edge's buffer; zero duration in YAML means
	// "no eviction" (vecmath.Infinite) rather than "evict everything
	// instantly" — see MaxAgeDuration.
	MaxAge time.Duration `yaml:"max_age"`

	// Infinite, when true, disables eviction regardless of MaxAge.
	Infinite bool `yaml:"infinite"`

	// Slack is the extrapolation tolerance applied to every edge.
	// Defaults to zero: no tolerance, extrapolation forbidden.
	Slack time.Duration `yaml:"slack"`

	// DefaultAwaitTimeout is applied by AwaitTransform when the caller's
	// context carries no deadline of its own. Zero means wait
	// indefinitely.
	DefaultAwaitTimeout time.Duration `yaml:"default_await_timeout"`
}

// Load reads and unmarshals a YAML document at path into Options.
func Load(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	var opts Options
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// MaxAgeDuration converts RegistryOptions into the vecmath.Duration
// registry.New expects, honoring the Infinite flag and mapping a zero
// MaxAge to vecmath.Infinite.
func (o RegistryOptions) MaxAgeDuration() vecmath.Duration {
	if o.Infinite || o.MaxAge == 0 {
		return vecmath.Infinite
	}
	return vecmath.AsDuration(o.MaxAge)
}

// SlackDuration converts RegistryOptions.Slack into a vecmath.Duration.
func (o RegistryOptions) SlackDuration() vecmath.Duration {
	return vecmath.AsDuration(o.Slack)
}
