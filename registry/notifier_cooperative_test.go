//go:build cooperative

package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tframelib/tframe/registry"
	"github.com/tframelib/tframe/vecmath"
)

// Build with `go test -tags cooperative ./registry/...` to exercise this
// file; the cooperative profile is the only one that supports true
// cancellation.
func TestRegistry_AwaitTransform_CooperativeProfileCancels(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.AwaitTransform(ctx, "never", "inserted", 0)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, registry.ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("AwaitTransform did not observe context cancellation")
	}
}

func TestRegistry_AwaitTransform_CooperativeProfileTimesOut(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := r.AwaitTransform(ctx, "never", "inserted", 0)
	require.ErrorIs(t, err, registry.ErrTimeout)
}
