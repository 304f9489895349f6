// Package fetch resolves the race between overlapping requests: when a
// filter changes faster than round-trip latency, every in-flight fetch
// takes a ticket and only the newest ticket is allowed to update view
// state. Stale responses are dropped instead of overwriting fresher data.
package fetch

import "sync/atomic"

type Latest struct {
	seq atomic.Uint64
}

// Begin registers a new fetch and returns its ticket. Every call
// invalidates all earlier tickets.
func (l *Latest) Begin() uint64 {
	return l.seq.Add(1)
}

// Commit reports whether the ticket still belongs to the newest fetch.
// The caller applies the response only on true.
func (l *Latest) Commit(ticket uint64) bool {
	return l.seq.Load() == ticket
}
