package services

import (
	"context"
	"sync"

	"eventroster/internal/domain"
)

// RecordingNavigator remembers navigation requests so a transport without client-side routing
// can hand the target back to the client.
type RecordingNavigator struct {
	mu      sync.Mutex
	pending string
	count   int
}

// ToEventList records a navigation to the event list.
func (n *RecordingNavigator) ToEventList(_ context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = domain.EventListPath
	n.count++
}

// Take returns the pending navigation target, if any, and clears it.
func (n *RecordingNavigator) Take() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	target := n.pending
	n.pending = ""
	return target, target != ""
}

// Count returns how many navigations were requested in total.
func (n *RecordingNavigator) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}

// NavigatorFunc adapts a function to domain.Navigator.
type NavigatorFunc func(ctx context.Context)

// ToEventList calls f.
func (f NavigatorFunc) ToEventList(ctx context.Context) { f(ctx) }
