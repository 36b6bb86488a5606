package twitch

import (
	"context"
	"time"

	"maua-esports-backend/internal/logger"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentPolls = 4

// StatsFetcher reads the current numbers of a channel
type StatsFetcher interface {
	ChannelStats(ctx context.Context, login string) (*Stats, error)
}

// Broadcaster receives every changed snapshot
type Broadcaster interface {
	Broadcast(snapshot Snapshot)
}

// Poller refreshes the cache on a fixed interval
type Poller struct {
	fetcher     StatsFetcher
	cache       *Cache
	broadcaster Broadcaster
	clock       clockwork.Clock
	interval    time.Duration
	log         *logger.Logger
}

// NewPoller creates a poller. A nil broadcaster disables push updates.
func NewPoller(fetcher StatsFetcher, cache *Cache, broadcaster Broadcaster, clock clockwork.Clock, interval time.Duration) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		fetcher:     fetcher,
		cache:       cache,
		broadcaster: broadcaster,
		clock:       clock,
		interval:    interval,
		log:         logger.WithComponent("twitch-poller"),
	}
}

// Run polls once immediately and then on every tick until ctx is done
func (p *Poller) Run(ctx context.Context) error {
	p.PollOnce(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			p.PollOnce(ctx)
		}
	}
}

// PollOnce refreshes every configured channel. Failures keep the previous value.
func (p *Poller) PollOnce(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentPolls)
	for _, channel := range p.cache.Channels() {
		g.Go(func() error {
			p.poll(ctx, channel)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Poller) poll(ctx context.Context, channel string) {
	stats, err := p.fetcher.ChannelStats(ctx, channel)
	if err != nil {
		p.log.WithField("channel", channel).WithError(err).Warn("Failed to refresh channel stats")
		return
	}

	now := p.clock.Now().UTC()
	stats.LastUpdated = &now
	snapshot, changed := p.cache.Update(channel, *stats)
	if !changed {
		return
	}
	p.log.WithFields(map[string]interface{}{
		"channel":   channel,
		"followers": snapshot.Followers,
		"viewers":   snapshot.Viewers,
		"live":      snapshot.IsLive,
	}).Info("Channel stats changed")
	if p.broadcaster != nil {
		p.broadcaster.Broadcast(snapshot)
	}
}
