package cache

import "sync"

// ViewCounter accumulates post view counts in memory so that every page read
// does not turn into a database write. The flusher drains it periodically.
type ViewCounter struct {
	mu      sync.Mutex
	pending map[string]int64
}

func NewViewCounter() *ViewCounter {
	return &ViewCounter{pending: make(map[string]int64)}
}

// Add counts one view against a post.
func (vc *ViewCounter) Add(postID string) {
	if postID == "" {
		return
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.pending[postID]++
}

// Drain returns all pending counts and resets the counter. Views recorded
// after Drain returns land in the next batch.
func (vc *ViewCounter) Drain() map[string]int64 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	drained := vc.pending
	vc.pending = make(map[string]int64)
	return drained
}

// Stats reports how many posts have pending views and the total pending count.
func (vc *ViewCounter) Stats() (posts int, views int64) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	for _, n := range vc.pending {
		views += n
	}
	return len(vc.pending), views
}
