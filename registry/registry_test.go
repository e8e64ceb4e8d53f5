package registry_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tframelib/tframe/edgebuffer"
	"github.com/tframelib/tframe/framegraph"
	"github.com/tframelib/tframe/registry"
	"github.com/tframelib/tframe/vecmath"
	"github.com/tframelib/tframe/xform"
)

func identityTF(parent, child xform.FrameID, x float64, ts vecmath.Timestamp) xform.Transform {
	return xform.Transform{
		Translation: vecmath.Vector3{X: x},
		Rotation:    vecmath.IdentityQuaternion,
		Timestamp:   ts,
		Parent:      parent,
		Child:       child,
	}
}

// Scenario 1 & 4 through the public Registry surface.
func TestRegistry_GetTransform_SingleEdgeAndInverse(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	require.NoError(t, r.AddTransform(identityTF("a", "b", 1, 0)))
	require.NoError(t, r.AddTransform(identityTF("a", "b", 2, 10)))

	got, err := r.GetTransform("a", "b", 5)
	require.NoError(t, err)
	require.InDelta(t, 1.5, got.Translation.X, 1e-9)

	got, err = r.GetTransform("b", "a", 5)
	require.NoError(t, err)
	require.InDelta(t, -1.5, got.Translation.X, 1e-9)
}

// Scenario 2: rotation interpolation.
func TestRegistry_GetTransform_RotationInterpolation(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	q90 := vecmath.Quaternion{W: math.Cos(math.Pi / 4), Z: math.Sin(math.Pi / 4)}
	require.NoError(t, r.AddTransform(xform.Transform{
		Rotation: vecmath.IdentityQuaternion, Timestamp: 0, Parent: "a", Child: "b",
	}))
	require.NoError(t, r.AddTransform(xform.Transform{
		Rotation: q90, Timestamp: 10, Parent: "a", Child: "b",
	}))

	got, err := r.GetTransform("a", "b", 5)
	require.NoError(t, err)
	require.InDelta(t, math.Cos(math.Pi/8), got.Rotation.W, 1e-9)
	require.InDelta(t, math.Sin(math.Pi/8), got.Rotation.Z, 1e-9)
}

// Scenario 5: before-buffer is terminal even through Await.
func TestRegistry_AwaitTransform_BeforeBufferIsTerminal(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	require.NoError(t, r.AddTransform(identityTF("a", "b", 1, 10)))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.AwaitTransform(ctx, "a", "b", 5)
	require.ErrorIs(t, err, edgebuffer.ErrBeforeBuffer)
}

// Scenario 6: a waiter wakes once the satisfying data arrives, with no
// polling in between.
func TestRegistry_AwaitTransform_WakesOnInsert(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)

	resultCh := make(chan xform.Transform, 1)
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		got, err := r.AwaitTransform(ctx, "a", "b", 0)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- got
	}()

	time.Sleep(20 * time.Millisecond) // give the waiter time to block
	require.NoError(t, r.AddTransform(identityTF("a", "b", 0, 0)))

	wg.Wait()
	select {
	case err := <-errCh:
		t.Fatalf("unexpected error: %v", err)
	case got := <-resultCh:
		require.Equal(t, 0.0, got.Translation.X)
	default:
		t.Fatal("AwaitTransform did not report a result")
	}
}

func TestRegistry_AwaitTransform_DisconnectedRetriesUntilConnected(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	require.NoError(t, r.AddTransform(identityTF("a", "b", 0, 0)))
	require.NoError(t, r.AddTransform(identityTF("x", "y", 0, 0)))

	resultCh := make(chan struct{}, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := r.AwaitTransform(ctx, "b", "y", 0)
		if err == nil {
			resultCh <- struct{}{}
		}
	}()

	time.Sleep(20 * time.Millisecond)
	// Connect the two subtrees: x becomes a child of b.
	require.NoError(t, r.AddTransform(identityTF("b", "x", 0, 0)))

	select {
	case <-resultCh:
	case <-time.After(2 * time.Second):
		t.Fatal("AwaitTransform never resolved Disconnected after the graph connected")
	}
}

func TestRegistry_AddTransform_ParentConflict(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	require.NoError(t, r.AddTransform(identityTF("p1", "c", 0, 0)))

	err := r.AddTransform(identityTF("p2", "c", 0, 0))
	require.ErrorIs(t, err, framegraph.ErrParentConflict)

	_, err = r.GetTransform("p1", "c", 0)
	require.NoError(t, err)
}

func TestRegistry_AddTransform_SameFrameRejected(t *testing.T) {
	r := registry.New(vecmath.Infinite, 0, nil)
	err := r.AddTransform(identityTF("a", "a", 0, 0))
	require.ErrorIs(t, err, xform.ErrSameFrame)
}
