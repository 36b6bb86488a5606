package twitch

import (
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "maua-esports-backend/internal/errors"
)

// Stats are the public numbers of a channel
type Stats struct {
	Followers   int        `json:"followers"`
	Viewers     int        `json:"viewers"`
	IsLive      bool       `json:"isLive"`
	LastUpdated *time.Time `json:"lastUpdated"`
}

// Snapshot is the payload served over HTTP and WebSocket
type Snapshot struct {
	Stats
	Channel string `json:"channel"`
}

// Cache keeps the latest stats of every configured channel.
// The poller is the only writer.
type Cache struct {
	mu       sync.RWMutex
	stats    map[string]*Stats
	channels []string
}

// NewCache creates an empty cache for channels. Names are case insensitive.
func NewCache(channels []string) *Cache {
	c := &Cache{stats: make(map[string]*Stats, len(channels))}
	for _, ch := range channels {
		key := strings.ToLower(strings.TrimSpace(ch))
		if key == "" {
			continue
		}
		if _, dup := c.stats[key]; dup {
			continue
		}
		c.stats[key] = nil
		c.channels = append(c.channels, key)
	}
	sort.Strings(c.channels)
	return c
}

// Channels lists the configured channels in name order
func (c *Cache) Channels() []string {
	return append([]string(nil), c.channels...)
}

// Get returns the snapshot of channel
func (c *Cache) Get(channel string) (Snapshot, error) {
	key := strings.ToLower(channel)

	c.mu.RLock()
	defer c.mu.RUnlock()

	stats, ok := c.stats[key]
	if !ok {
		return Snapshot{}, apperrors.ErrChannelNotFound
	}
	if stats == nil {
		return Snapshot{}, apperrors.ErrStatsNotReady
	}
	return Snapshot{Stats: *stats, Channel: key}, nil
}

// Ready returns the snapshots of every channel polled at least once
func (c *Cache) Ready() []Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Snapshot, 0, len(c.channels))
	for _, ch := range c.channels {
		if s := c.stats[ch]; s != nil {
			out = append(out, Snapshot{Stats: *s, Channel: ch})
		}
	}
	return out
}

// Update stores stats for channel and reports whether the followers,
// viewers or live flag differ from the previous value. Unknown channels
// are ignored.
func (c *Cache) Update(channel string, stats Stats) (Snapshot, bool) {
	key := strings.ToLower(channel)

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, ok := c.stats[key]
	if !ok {
		return Snapshot{}, false
	}
	changed := prev == nil ||
		prev.Followers != stats.Followers ||
		prev.Viewers != stats.Viewers ||
		prev.IsLive != stats.IsLive

	stored := stats
	c.stats[key] = &stored
	return Snapshot{Stats: stored, Channel: key}, changed
}
