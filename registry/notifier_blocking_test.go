//go:build !cooperative

package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tframelib/tframe/registry"
	"github.com/tframelib/tframe/vecmath"
)

func TestRegistry_AwaitTransform_BlockingProfileTimesOut(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := r.AwaitTransform(ctx, "never", "inserted", 0)
	require.ErrorIs(t, err, registry.ErrTimeout)
}

func TestRegistry_AwaitTransform_DefaultTimeoutAppliesWithoutDeadline(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	r.SetDefaultAwaitTimeout(30 * time.Millisecond)

	_, err := r.AwaitTransform(context.Background(), "never", "inserted", 0)
	require.ErrorIs(t, err, registry.ErrTimeout)
}
