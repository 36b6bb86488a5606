package twitch

import (
	"context"
	"errors"
	"net/http"
	"time"

	"maua-esports-backend/internal/config"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Service wires the poller and the HTTP server of the stats service
type Service struct {
	server *http.Server
	poller *Poller
	hub    *Hub
	log    *logger.Logger
}

// NewService builds the stats service from cfg
func NewService(cfg *config.Config) (*Service, error) {
	if cfg.TwitchClientID == "" || cfg.TwitchClientSecret == "" {
		return nil, apperrors.ErrTwitchNotConfigured
	}
	if len(cfg.TwitchChannels) == 0 {
		return nil, apperrors.NewConfigurationError("TWITCH_CHANNELS is empty")
	}

	client := NewClient(&http.Client{Timeout: cfg.HTTPTimeout()}, ClientConfig{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
	})
	cache := NewCache(cfg.TwitchChannels)
	hub := NewHub(DefaultHubConfig())
	poller := NewPoller(client, cache, hub, clockwork.NewRealClock(), cfg.TwitchPollInterval)

	return &Service{
		server: &http.Server{
			Addr:              ":" + cfg.TwitchPort,
			Handler:           NewServer(cache, hub).Router(cfg),
			ReadHeaderTimeout: 10 * time.Second,
		},
		poller: poller,
		hub:    hub,
		log:    logger.WithComponent("twitch"),
	}, nil
}

// Run serves until ctx is done or the listener fails
func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.poller.Run(ctx)
	})
	g.Go(func() error {
		s.log.Infof("Twitch stats service listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.hub.Close()
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
