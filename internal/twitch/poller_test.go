package twitch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu    sync.Mutex
	stats map[string]Stats
	err   error
	calls int
}

func (f *stubFetcher) ChannelStats(_ context.Context, login string) (*Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s := f.stats[login]
	return &s, nil
}

func (f *stubFetcher) set(login string, s Stats) {
	f.mu.Lock()
	f.stats[login] = s
	f.mu.Unlock()
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []Snapshot
}

func (b *recordingBroadcaster) Broadcast(s Snapshot) {
	b.mu.Lock()
	b.sent = append(b.sent, s)
	b.mu.Unlock()
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

func TestPoller_PollOnce(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC))
	fetcher := &stubFetcher{stats: map[string]Stats{"mauaesports": {Followers: 50}}}
	cache := NewCache([]string{"mauaesports"})
	out := &recordingBroadcaster{}
	p := NewPoller(fetcher, cache, out, clock, time.Minute)

	p.PollOnce(context.Background())

	snap, err := cache.Get("mauaesports")
	require.NoError(t, err)
	assert.Equal(t, 50, snap.Followers)
	require.NotNil(t, snap.LastUpdated)
	assert.Equal(t, clock.Now().UTC(), *snap.LastUpdated)
	assert.Equal(t, 1, out.count())

	// unchanged numbers do not broadcast
	p.PollOnce(context.Background())
	assert.Equal(t, 1, out.count())
}

func TestPoller_FailureKeepsPreviousValue(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &stubFetcher{stats: map[string]Stats{"mauaesports": {Followers: 7}}}
	cache := NewCache([]string{"mauaesports"})
	p := NewPoller(fetcher, cache, nil, clock, time.Minute)

	p.PollOnce(context.Background())
	fetcher.err = errors.New("helix down")
	p.PollOnce(context.Background())

	snap, err := cache.Get("mauaesports")
	require.NoError(t, err)
	assert.Equal(t, 7, snap.Followers)
}

func TestPoller_RunTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &stubFetcher{stats: map[string]Stats{"mauaesports": {Followers: 1}}}
	cache := NewCache([]string{"mauaesports"})
	out := &recordingBroadcaster{}
	p := NewPoller(fetcher, cache, out, clock, 5*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	assert.Equal(t, 1, fetcher.callCount())

	fetcher.set("mauaesports", Stats{Followers: 2})
	clock.Advance(5 * time.Minute)
	assert.Eventually(t, func() bool { return fetcher.callCount() == 2 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return out.count() == 2 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
}
