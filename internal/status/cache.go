// Package status keeps the cached network status snapshot and the loop that refreshes it.
package status

import (
	"sync"

	"github.com/ashelwen77/zksync/internal/model"
)

// Cache holds the latest published NetworkStatus.
// Reads and replaces are serialized by a single RWMutex, so a reader always sees a whole snapshot.
type Cache struct {
	mu     sync.RWMutex
	status model.NetworkStatus
}

// NewCache returns a Cache holding the zero snapshot.
func NewCache() *Cache {
	return &Cache{}
}

// Read returns a copy of the current snapshot.
func (c *Cache) Read() model.NetworkStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Replace swaps the stored snapshot for status.
func (c *Cache) Replace(status model.NetworkStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}
