package agent

import "sync"

// ChannelGuard serializes runs per channel so two concurrent messages in the
// same channel cannot interleave their tool effects or history writes.
// Entries are kept for the life of the process; a Discord deployment sees a
// bounded set of channels, so the map is never pruned.
type ChannelGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChannelGuard creates an empty guard
func NewChannelGuard() *ChannelGuard {
	return &ChannelGuard{
		locks: make(map[string]*sync.Mutex),
	}
}

// Acquire blocks until the channel's lock is held and returns the release
// function. Different channels never contend with each other.
func (g *ChannelGuard) Acquire(channelID string) func() {
	g.mu.Lock()
	lock, ok := g.locks[channelID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[channelID] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
