//go:build cooperative

package registry

import (
	"context"
	"sync"
)

// notifier is the cooperative profile's broadcast primitive: a channel
// that is closed (and replaced) on every broadcast. A waiter captures
// the current channel before rechecking its query and then selects on
// it alongside ctx.Done(), so cancellation unsuspends it immediately —
// the property the blocking profile cannot offer.
//
// The tiny sync.Mutex here only protects the channel pointer swap, not
// the wait itself; waiting is a select, never a thread block, which is
// what makes this profile "cooperative" rather than OS-thread blocking.
type notifier struct {
	mu sync.Mutex
	ch chan struct{}
}

func newNotifier() *notifier {
	return &notifier{ch: make(chan struct{})}
}

// broadcast closes the current generation channel, waking every waiter
// selecting on it, and installs a fresh channel for the next round.
func (n *notifier) broadcast() {
	n.mu.Lock()
	old := n.ch
	n.ch = make(chan struct{})
	n.mu.Unlock()
	close(old)
}

// snapshot returns the current generation channel. Callers must take
// this *before* rechecking their query: if a broadcast races with the
// recheck it still closes this exact channel, so waitOn never blocks on
// a generation that has already passed.
func (n *notifier) snapshot() chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ch
}

// waitOn suspends until gen closes (a broadcast occurred) or ctx is
// done. A done ctx here can mean either an elapsed deadline or an
// explicit cancel; classifyCtxErr tells them apart.
func (n *notifier) waitOn(ctx context.Context, gen chan struct{}) error {
	select {
	case <-gen:
		return nil
	case <-ctx.Done():
		return classifyCtxErr(ctx.Err())
	}
}
