package framegraph

import (
	"sync"

	"github.com/tframelib/tframe/edgebuffer"
	"github.com/tframelib/tframe/vecmath"
	"github.com/tframelib/tframe/xform"
)

// Graph maps each child frame to its (fixed-for-lifetime) parent and to
// the EdgeBuffer of transforms observed on that parent→child edge.
//
// mu guards both maps together: Add must check-then-set the parent
// binding and insert into the buffer as one atomic step, and Chain must
// see a consistent snapshot of the parent map while walking it.
type Graph struct {
	mu      sync.RWMutex
	maxAge  vecmath.Duration
	slack   vecmath.Duration
	parents map[xform.FrameID]xform.FrameID
	edges   map[xform.FrameID]*edgebuffer.Buffer // keyed by child
}

// New constructs an empty Graph whose edges all share maxAge as their
// eviction window and slack as their extrapolation tolerance (normally
// zero; see edgebuffer.Buffer.WithSlack).
func New(maxAge, slack vecmath.Duration) *Graph {
	return &Graph{
		maxAge:  maxAge,
		slack:   slack,
		parents: make(map[xform.FrameID]xform.FrameID),
		edges:   make(map[xform.FrameID]*edgebuffer.Buffer),
	}
}

// Add records tf on the (tf.Parent, tf.Child) edge, creating that edge's
// buffer lazily on first use. If tf.Child already has a different
// parent bound, the graph is left unmodified and ErrParentConflict is
// returned; the previously-bound edge remains queryable.
func (g *Graph) Add(tf xform.Transform) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.parents[tf.Child]; ok && existing != tf.Parent {
		return ErrParentConflict
	}
	g.parents[tf.Child] = tf.Parent // idempotent when existing == tf.Parent

	buf, ok := g.edges[tf.Child]
	if !ok {
		buf = edgebuffer.New(g.maxAge).WithSlack(g.slack)
		g.edges[tf.Child] = buf
	}
	buf.Insert(tf)
	return nil
}

// Chain finds the rigid transform from frame `from` to frame `to` at
// time t: Transform{Parent: from, Child: to}, i.e. the pose of `to`
// expressed in `from`'s coordinates (one of two equally valid
// conventions for which endpoint is "parent" in the result; this one
// matches how the worked examples in the tests read).
//
// from == to returns the identity at time t without touching the graph.
// Otherwise it finds the lowest common ancestor of the two frames by
// walking parent links to the root on each side, composes the "up" leg
// from `from` to the LCA (inverting each stored parent→child sample)
// and the "down" leg from `to` to the LCA the same way, then combines
// them. Any edgebuffer.Sample error along either leg aborts the whole
// query and is returned unchanged.
func (g *Graph) Chain(from, to xform.FrameID, t vecmath.Timestamp) (xform.Transform, error) {
	if from == to {
		return xform.Identity(from, t), nil
	}

	g.mu.RLock()
	ancestorsFrom := g.ancestorsLocked(from)
	ancestorsTo := g.ancestorsLocked(to)
	g.mu.RUnlock()

	lcaFromIdx, lcaToIdx, ok := lowestCommonAncestor(ancestorsFrom, ancestorsTo)
	if !ok {
		return xform.Transform{}, ErrDisconnected
	}

	up, err := g.poseOfAncestorIn(ancestorsFrom[:lcaFromIdx+1], t)
	if err != nil {
		return xform.Transform{}, err
	}
	down, err := g.poseOfAncestorIn(ancestorsTo[:lcaToIdx+1], t)
	if err != nil {
		return xform.Transform{}, err
	}

	return xform.Compose(up, down.Inverse(), t), nil
}

// ancestorsLocked returns [f, parent(f), parent(parent(f)), ...] up to
// (and including) the root frame that has no recorded parent. Caller
// must hold mu for reading.
func (g *Graph) ancestorsLocked(f xform.FrameID) []xform.FrameID {
	chain := []xform.FrameID{f}
	cur := f
	for {
		p, ok := g.parents[cur]
		if !ok {
			return chain
		}
		chain = append(chain, p)
		cur = p
	}
}

// lowestCommonAncestor returns the index into each ancestor chain at
// which the deepest shared frame occurs, scanning `to` from the leaf
// upward so the first hit is the lowest (most specific) common ancestor.
func lowestCommonAncestor(ancestorsFrom, ancestorsTo []xform.FrameID) (fromIdx, toIdx int, ok bool) {
	depthFrom := make(map[xform.FrameID]int, len(ancestorsFrom))
	for i, f := range ancestorsFrom {
		depthFrom[f] = i
	}
	for j, f := range ancestorsTo {
		if i, found := depthFrom[f]; found {
			return i, j, true
		}
	}
	return 0, 0, false
}

// poseOfAncestorIn composes the pose of leafChain's last frame (the
// LCA) expressed in leafChain's first frame (the leaf): it walks the
// leaf's stored parent→child edges inward-out, inverting each sampled
// transform and composing the results in order.
func (g *Graph) poseOfAncestorIn(leafChain []xform.FrameID, t vecmath.Timestamp) (xform.Transform, error) {
	leaf := leafChain[0]
	acc := xform.Identity(leaf, t)

	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := 0; i < len(leafChain)-1; i++ {
		child := leafChain[i]
		buf, ok := g.edges[child]
		if !ok {
			// parents recorded a binding with no buffer yet created is
			// impossible (Add creates both atomically); treat as
			// no-data-yet rather than panicking.
			return xform.Transform{}, edgebuffer.ErrNotFound
		}
		tf, err := buf.Sample(t)
		if err != nil {
			return xform.Transform{}, err
		}
		acc = xform.Compose(acc, tf.Inverse(), t)
	}
	return acc, nil
}
