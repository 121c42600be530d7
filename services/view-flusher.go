package services

import (
	"blog-server/cache"
	"blog-server/repositories"
	"log"
	"time"
)

// ViewFlusher periodically drains the in-memory view counter into the posts
// table. A failed write puts nothing back: view counts are best effort.
type ViewFlusher struct {
	counter  *cache.ViewCounter
	posts    repositories.PostRepository
	interval time.Duration
}

func NewViewFlusher(counter *cache.ViewCounter, posts repositories.PostRepository, interval time.Duration) *ViewFlusher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ViewFlusher{
		counter:  counter,
		posts:    posts,
		interval: interval,
	}
}

func (vf *ViewFlusher) Start() {
	ticker := time.NewTicker(vf.interval)
	go func() {
		for range ticker.C {
			vf.Flush()
		}
	}()
}

// Flush writes all pending view counts to the database.
func (vf *ViewFlusher) Flush() {
	pending := vf.counter.Drain()
	if len(pending) == 0 {
		return
	}

	flushed := 0
	for postID, views := range pending {
		if err := vf.posts.AddViews(postID, views); err != nil {
			log.Printf("Error flushing %d views for post %s: %v", views, postID, err)
			continue
		}
		flushed++
	}
	log.Printf("Flushed view counts for %d of %d posts", flushed, len(pending))
}

// Stats exposes the counter for the stats endpoint.
func (vf *ViewFlusher) Stats() (posts int, views int64) {
	return vf.counter.Stats()
}
