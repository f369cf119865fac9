package sequence

import "sync"

// Token identifies one issued request for a resource.
type Token struct {
	Resource string
	Seq      uint64
}

// Tracker hands out monotonically increasing tokens per resource so that only
// the most recently issued request may commit its result.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Issue returns a new token for resource, superseding every earlier one.
func (t *Tracker) Issue(resource string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest[resource]++
	return Token{Resource: resource, Seq: t.latest[resource]}
}

// IsLatest reports whether token is still the newest issued for its resource.
func (t *Tracker) IsLatest(token Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.latest[token.Resource] == token.Seq
}
