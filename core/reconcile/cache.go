package reconcile

import (
	"catalog-ingest/core/catalog"
	"catalog-ingest/core/metrics"
)

// FamilyCache holds every family confirmed by the store or created by the
// queue during one run. Entries are never evicted or overwritten: the first
// writer for an id wins. Memory is bounded by the number of distinct family
// ids of one extract.
type FamilyCache struct {
	entries map[string]catalog.StoredItem
}

// NewFamilyCache creates an empty cache.
func NewFamilyCache() *FamilyCache {
	return &FamilyCache{entries: make(map[string]catalog.StoredItem)}
}

// Has reports whether the family id is known.
func (c *FamilyCache) Has(federatedID string) bool {
	_, ok := c.entries[federatedID]
	return ok
}

// Put adds an entry unless the id is already cached. It reports whether the
// entry was added.
func (c *FamilyCache) Put(federatedID string, item catalog.StoredItem) bool {
	if _, ok := c.entries[federatedID]; ok {
		return false
	}
	c.entries[federatedID] = item
	metrics.FamilyCacheEntries.Inc()
	return true
}

// Merge adds every record of found that is not cached yet and returns the
// number of entries added.
func (c *FamilyCache) Merge(found map[string]catalog.StoredItem) int {
	added := 0
	for id, item := range found {
		if c.Put(id, item) {
			added++
		}
	}
	return added
}

// Len returns the number of cached families.
func (c *FamilyCache) Len() int {
	return len(c.entries)
}

// release drops the cache contents from the process-wide gauge.
func (c *FamilyCache) release() {
	metrics.FamilyCacheEntries.Sub(float64(len(c.entries)))
	c.entries = make(map[string]catalog.StoredItem)
}
