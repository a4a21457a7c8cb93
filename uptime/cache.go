package uptime

import "sync"

// Cache keeps the last uptime percentage seen for each validator for the
// lifetime of the process. It is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewCache seeds every given node with 0.0.
func NewCache(nodeIDs []string) *Cache {
	values := make(map[string]float64, len(nodeIDs))
	for _, id := range nodeIDs {
		values[id] = 0
	}
	return &Cache{values: values}
}

// Get returns the cached percentage, 0.0 when the node was never observed.
func (c *Cache) Get(nodeID string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[nodeID]
}

func (c *Cache) Set(nodeID string, percent float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[nodeID] = percent
}

func (c *Cache) Snapshot() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
