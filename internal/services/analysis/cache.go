package analysis

import (
	"sort"
	"strings"
	"sync"

	"github.com/rgale/folioscope/internal/models"
)

// recordCache memoizes per-ticker analysis records for the life of one
// analysis session. Keys combine the ticker with the sorted keyword set so
// a changed theme never serves stale scores. The run action clears it
// before each pass — "run" means force refresh.
type recordCache struct {
	mu      sync.RWMutex
	entries map[string]*models.TickerRecord
}

func newRecordCache() *recordCache {
	return &recordCache{entries: make(map[string]*models.TickerRecord)}
}

// cacheKey builds the lookup key from a ticker and keyword set. Keywords
// are sorted so key equality is order-independent; the input slice is not
// mutated. The unit separator keeps multi-word keywords unambiguous.
func cacheKey(ticker string, keywords []string) string {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Strings(sorted)
	return ticker + "\x1f" + strings.Join(sorted, "\x1f")
}

func (c *recordCache) get(key string) (*models.TickerRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.entries[key]
	return rec, ok
}

func (c *recordCache) put(key string, rec *models.TickerRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = rec
}

func (c *recordCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*models.TickerRecord)
}
