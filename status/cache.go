// Package status maintains the network status snapshot: a summary of chain
// progress recomputed by one background updater and read by any number of
// concurrent request handlers.
package status

import (
	"sync/atomic"

	"github.com/syncstate/ledger-hub/types"
)

// Cache publishes NetworkStatus snapshots. The updater is the only writer;
// each write replaces the whole snapshot with a single pointer swap, so a
// reader always observes a complete snapshot, never a mix of two refreshes.
type Cache struct {
	snapshot atomic.Pointer[types.NetworkStatus]
}

// NewCache starts out with a zero-valued snapshot, which stands until the
// first successful refresh.
func NewCache() *Cache {
	c := &Cache{}
	c.snapshot.Store(&types.NetworkStatus{})
	return c
}

// Read returns the most recently published snapshot. Non-blocking, never
// fails, and idempotent between two refresh ticks.
func (c *Cache) Read() types.NetworkStatus {
	return *c.snapshot.Load()
}

func (c *Cache) publish(snapshot *types.NetworkStatus) {
	c.snapshot.Store(snapshot)
}
