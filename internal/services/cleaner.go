package services

import (
	"log"
	"sync"
	"time"
)

// Cleaner periodically deletes uploaded files past the retention window.
// Uploads only need to live long enough for text extraction; retention is a
// grace period for debugging.
type Cleaner interface {
	Start()
	Stop()
}

type cleaner struct {
	storage   StorageService
	interval  time.Duration
	retention time.Duration
	wg        sync.WaitGroup
	stopChan  chan struct{}
}

func NewCleaner(storage StorageService, interval, retention time.Duration) Cleaner {
	return &cleaner{
		storage:   storage,
		interval:  interval,
		retention: retention,
		stopChan:  make(chan struct{}),
	}
}

// Start implements Cleaner.
func (c *cleaner) Start() {
	log.Printf("🧹 Starting upload cleaner (every %s, retention %s)\n", c.interval, c.retention)

	c.wg.Add(1)
	go c.sweepLoop()
}

// Stop implements Cleaner.
func (c *cleaner) Stop() {
	log.Println("🛑 Stopping upload cleaner...")
	close(c.stopChan)
	c.wg.Wait()
	log.Println("✅ Upload cleaner stopped")
}

func (c *cleaner) sweepLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-c.retention)
			deleted, err := c.storage.DeleteOlderThan(cutoff)
			if err != nil {
				log.Printf("⚠️  Upload sweep failed: %v\n", err)
				continue
			}
			if deleted > 0 {
				log.Printf("🧹 Removed %d expired uploads\n", deleted)
			}
		}
	}
}
