package edgebuffer

import (
	"sort"
	"sync"

	"github.com/tframelib/tframe/interpolate"
	"github.com/tframelib/tframe/vecmath"
	"github.com/tframelib/tframe/xform"
)

// Buffer is the time-indexed sequence of Transforms for a single
// directed edge. The zero value is not usable; construct with New.
//
// mu guards entries; Buffer is safe for concurrent Insert/Sample from
// multiple goroutines.
type Buffer struct {
	mu      sync.RWMutex
	maxAge  vecmath.Duration
	slack   vecmath.Duration
	entries []xform.Transform // sorted strictly by ascending Timestamp
}

// New constructs an empty Buffer with the given eviction window.
// maxAge == vecmath.Infinite disables time-based eviction entirely.
func New(maxAge vecmath.Duration) *Buffer {
	return &Buffer{maxAge: maxAge}
}

// WithSlack sets an extrapolation tolerance: a Sample at up to slack
// nanoseconds beyond the newest (or before the oldest) stored entry is
// answered by clamping to that endpoint instead of returning
// ErrAfterBuffer/ErrBeforeBuffer. Defaults to zero (no tolerance,
// extrapolation forbidden) and must be opted into explicitly via
// tfconfig.
func (b *Buffer) WithSlack(slack vecmath.Duration) *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slack = slack
	return b
}

// Len returns the number of entries currently retained.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Insert adds tf to the buffer, replacing any existing entry at the
// same Timestamp, then evicts every entry older than
// latest.Timestamp - maxAge. Insert does not validate tf beyond what
// the caller already checked (framegraph.Add / xform.Transform.Validate
// own that); it assumes tf.Parent/tf.Child match every other entry
// already present.
func (b *Buffer) Insert(tf xform.Transform) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Binary search for the insertion point: the first index whose
	// timestamp is >= tf.Timestamp.
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Timestamp >= tf.Timestamp
	})

	switch {
	case i < len(b.entries) && b.entries[i].Timestamp == tf.Timestamp:
		b.entries[i] = tf // replace-on-equal-timestamp
	case i == len(b.entries):
		b.entries = append(b.entries, tf)
	default:
		b.entries = append(b.entries, xform.Transform{})
		copy(b.entries[i+1:], b.entries[i:])
		b.entries[i] = tf
	}

	b.evictLocked()
}

// evictLocked drops every entry strictly older than
// latest.Timestamp - maxAge. Caller must hold mu for writing.
func (b *Buffer) evictLocked() {
	if b.maxAge == vecmath.Infinite || len(b.entries) == 0 {
		return
	}
	cutoff := b.entries[len(b.entries)-1].Timestamp - vecmath.Timestamp(b.maxAge)
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Timestamp >= cutoff
	})
	if i > 0 {
		b.entries = append(b.entries[:0:0], b.entries[i:]...)
	}
}

// Sample returns the Transform at time t, interpolating between the
// bracketing entries when t falls strictly between two timestamps and
// returning the stored entry unmodified when t matches one exactly.
//
// Errors: ErrNotFound if the buffer is empty, ErrBeforeBuffer if t
// precedes the oldest entry by more than the configured slack,
// ErrAfterBuffer if t follows the newest entry by more than the
// configured slack.
func (b *Buffer) Sample(t vecmath.Timestamp) (xform.Transform, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.entries) == 0 {
		return xform.Transform{}, ErrNotFound
	}

	oldest, newest := b.entries[0], b.entries[len(b.entries)-1]
	if t < oldest.Timestamp {
		if vecmath.Duration(oldest.Timestamp-t) <= b.slack {
			return oldest, nil
		}
		return xform.Transform{}, ErrBeforeBuffer
	}
	if t > newest.Timestamp {
		if vecmath.Duration(t-newest.Timestamp) <= b.slack {
			return newest, nil
		}
		return xform.Transform{}, ErrAfterBuffer
	}

	// i is the first index whose timestamp is >= t.
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Timestamp >= t
	})
	if b.entries[i].Timestamp == t {
		return b.entries[i], nil
	}

	a, bb := b.entries[i-1], b.entries[i]
	return interpolateBracket(a, bb, t), nil
}

// interpolateBracket applies the interpolation kernel to the bracketing
// pair (a, b) at time t, a <= t <= b, same (parent, child).
func interpolateBracket(a, bb xform.Transform, t vecmath.Timestamp) xform.Transform {
	u := interpolate.Fraction(a.Timestamp, t, bb.Timestamp)
	return xform.Transform{
		Translation: interpolate.Lerp(a.Translation, bb.Translation, u),
		Rotation:    interpolate.Slerp(a.Rotation, bb.Rotation, u),
		Timestamp:   t,
		Parent:      a.Parent,
		Child:       a.Child,
	}
}

// Oldest returns the earliest stored entry and whether the buffer is
// non-empty.
func (b *Buffer) Oldest() (xform.Transform, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.entries) == 0 {
		return xform.Transform{}, false
	}
	return b.entries[0], true
}

// Newest returns the latest stored entry and whether the buffer is
// non-empty.
func (b *Buffer) Newest() (xform.Transform, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.entries) == 0 {
		return xform.Transform{}, false
	}
	return b.entries[len(b.entries)-1], true
}
