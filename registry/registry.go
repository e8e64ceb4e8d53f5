package registry

import (
	"context"
	"errors"
	"time"

	"github.com/tframelib/tframe/edgebuffer"
	"github.com/tframelib/tframe/framegraph"
	"github.com/tframelib/tframe/tfmetrics"
	"github.com/tframelib/tframe/vecmath"
	"github.com/tframelib/tframe/xform"
)

// Registry is the public surface of tframe: insert, synchronous query,
// and suspending query over a tree of frame relationships.
type Registry struct {
	graph          *framegraph.Graph
	notifier       *notifier
	recorder       tfmetrics.Recorder
	defaultTimeout time.Duration
}

// New constructs an empty Registry. maxAge bounds every edge's buffer
// (vecmath.Infinite disables eviction); slack is the extrapolation
// tolerance applied to every edge (zero by default).
// recorder may be nil to disable metrics entirely.
func New(maxAge, slack vecmath.Duration, recorder tfmetrics.Recorder) *Registry {
	return &Registry{
		graph:    framegraph.New(maxAge, slack),
		notifier: newNotifier(),
		recorder: recorder,
	}
}

// SetDefaultAwaitTimeout sets the deadline AwaitTransform applies when
// called with a context carrying no deadline of its own. Zero (the
// default) means wait indefinitely.
func (r *Registry) SetDefaultAwaitTimeout(d time.Duration) {
	r.defaultTimeout = d
}

// AddTransform stores tf, creating its edge's buffer lazily, and wakes
// every suspended AwaitTransform caller so they can recheck their query.
//
// Errors: xform.ErrSameFrame, xform.ErrInvalidQuaternion (tf fails
// Transform.Validate), framegraph.ErrParentConflict (tf.Child is
// already bound to a different parent). All are terminal configuration
// errors; nothing is retried.
func (r *Registry) AddTransform(tf xform.Transform) error {
	if err := tf.Validate(); err != nil {
		r.observe(opInsert, err)
		return err
	}
	if err := r.graph.Add(tf); err != nil {
		r.observe(opInsert, err)
		return err
	}
	r.notifier.broadcast()
	r.observe(opInsert, nil)
	return nil
}

// GetTransform answers the query from `from` to `to` at time t
// immediately, without waiting. See framegraph.Graph.Chain for the
// composition semantics and error taxonomy.
func (r *Registry) GetTransform(from, to xform.FrameID, t vecmath.Timestamp) (xform.Transform, error) {
	tf, err := r.graph.Chain(from, to, t)
	r.observe(opQueryNow, err)
	return tf, err
}

// AwaitTransform answers the query from `from` to `to` at time t,
// suspending the caller until a future AddTransform makes it answerable
// if it is not answerable yet.
//
// Non-terminal errors (edgebuffer.ErrNotFound, edgebuffer.ErrAfterBuffer,
// framegraph.ErrDisconnected) trigger a wait-and-recheck; every other
// error — most importantly edgebuffer.ErrBeforeBuffer, since expired
// data can never reappear — surfaces immediately. If ctx is nil and no
// default timeout was configured, AwaitTransform waits indefinitely.
func (r *Registry) AwaitTransform(ctx context.Context, from, to xform.FrameID, t vecmath.Timestamp) (xform.Transform, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.defaultTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
			defer cancel()
		}
	}

	for {
		gen := r.notifier.snapshot()

		tf, err := r.graph.Chain(from, to, t)
		if err == nil {
			r.observe(opAwait, nil)
			return tf, nil
		}
		if isTerminalForAwait(err) {
			r.observe(opAwait, err)
			return xform.Transform{}, err
		}

		if werr := r.notifier.waitOn(ctx, gen); werr != nil {
			r.observe(opAwait, werr)
			return xform.Transform{}, werr
		}
		// Spurious or satisfying wakeup: loop and recheck unconditionally.
	}
}

// isTerminalForAwait reports whether err should abort AwaitTransform
// immediately rather than triggering a wait. Only ErrBeforeBuffer is
// terminal here: NotFound/AfterBuffer/Disconnected may all be resolved
// by a future insert.
func isTerminalForAwait(err error) bool {
	return errors.Is(err, edgebuffer.ErrBeforeBuffer)
}

// classifyCtxErr maps a context error to the registry's public
// sentinel: DeadlineExceeded becomes ErrTimeout, anything else
// (explicit Cancel) becomes ErrCancelled.
func classifyCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ErrCancelled
}

func (r *Registry) observe(op string, err error) {
	if r.recorder == nil {
		return
	}
	r.recorder.Observe(op, err)
}

const (
	opInsert   = "insert"
	opQueryNow = "query_now"
	opAwait    = "await"
)
