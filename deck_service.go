package cardlist

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cloudcopper/cardlist/domain"
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/oklog/ulid/v2"
)

type DeckService struct {
	log                   ports.Logger
	bus                   ports.EventBus
	provider              ports.ContentProvider
	deckRepository        domain.DeckRepository
	loadConfig            func() (*config.Config, error)
	mutex                 sync.Mutex
	cfg                   *config.Config
	chTopicDeckRegenerate chan ports.Event
	chTopicConfigUpdated  chan ports.Event
	closeWg               sync.WaitGroup
}

// NewDeckService create deck service:
// - generates new deck on regenerate request
// - reloads config and generates new deck on config file update
// - generates new deck every cfg.Deck.Refresh (if not zero)
func NewDeckService(log ports.Logger, bus ports.EventBus, provider ports.ContentProvider, deckRepository domain.DeckRepository, cfg *config.Config, loadConfig func() (*config.Config, error)) *DeckService {
	log = log.With(slog.String("entity", "DeckService"))
	s := &DeckService{
		log:                   log,
		bus:                   bus,
		provider:              provider,
		deckRepository:        deckRepository,
		loadConfig:            loadConfig,
		cfg:                   cfg,
		chTopicDeckRegenerate: bus.Sub(ports.TopicDeckRegenerate),
		chTopicConfigUpdated:  bus.Sub(ports.TopicConfigUpdated),
	}

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s
}

func (s *DeckService) Close() {
	s.log.Info("closing")
	s.bus.Unsub(s.chTopicDeckRegenerate)
	s.bus.Unsub(s.chTopicConfigUpdated)
	s.closeWg.Wait()
}

// Config returns copy of effective config
func (s *DeckService) Config() *config.Config {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	cfg := *s.cfg
	return &cfg
}

// Current returns newest deck with cards.
// The very first deck is generated on demand.
func (s *DeckService) Current() (*models.Deck, error) {
	deck, err := s.deckRepository.FindLatest(ports.WithRelationship(true))
	if !errors.Is(err, ports.ErrRecordNotFound) {
		return deck, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	// other caller may have generated one meanwhile
	deck, err = s.deckRepository.FindLatest(ports.WithRelationship(true))
	if !errors.Is(err, ports.ErrRecordNotFound) {
		return deck, err
	}
	return s.regenerate()
}

// Regenerate generates and stores new deck of cfg.Deck.Count cards
// and removes decks older than cfg.Deck.Keep newest
func (s *DeckService) Regenerate() (*models.Deck, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.regenerate()
}

func (s *DeckService) regenerate() (*models.Deck, error) {
	count, keep := s.cfg.Deck.Count, s.cfg.Deck.Keep
	log := s.log.With(slog.Int("count", count))

	result, err := cards.Generate(s.provider, count)
	if err != nil {
		log.Error("unable to generate cards", slog.Any("err", err))
		return nil, err
	}

	deck := &models.Deck{
		DeckID:    ulid.Make().String(),
		CreatedAt: time.Now().UTC().Unix(),
		Count:     len(result),
		Cards:     result,
	}
	if err := s.deckRepository.Create(deck); err != nil {
		log.Error("unable to store deck", slog.Any("err", err))
		return nil, fmt.Errorf("unable to store deck: %w", err)
	}
	log.Info("deck generated", slog.String("deckID", deck.DeckID))

	s.prune(keep)
	s.bus.Pub(ports.TopicDeckGenerated, ports.Event{deck.DeckID})
	return deck, nil
}

// The prune removes all but keep newest decks
func (s *DeckService) prune(keep int) {
	decks, err := s.deckRepository.FindAll()
	if err != nil {
		s.log.Error("unable to find decks", slog.Any("err", err))
		return
	}
	if len(decks) <= keep {
		return
	}
	for _, deck := range decks[keep:] {
		if err := s.deckRepository.Delete(deck); err != nil {
			s.log.Error("unable to remove deck", slog.String("deckID", deck.DeckID), slog.Any("err", err))
			continue
		}
		s.log.Debug("deck removed", slog.String("deckID", deck.DeckID))
	}
}

// The reload replaces config by freshly loaded one.
// The broken config is ignored and previous one stays in use.
func (s *DeckService) reload() {
	if s.loadConfig == nil {
		return
	}
	cfg, err := s.loadConfig()
	if err != nil {
		s.log.Error("unable to reload config - keep previous", slog.Any("err", err))
		return
	}
	s.mutex.Lock()
	s.cfg = cfg
	s.mutex.Unlock()
	s.log.Info("config reloaded")
}

func (s *DeckService) background() {
	var ticker *time.Ticker
	var tick <-chan time.Time
	resetTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
		if d := s.Config().Deck.Refresh.Std(); d > 0 {
			s.log.Info("refresh deck", slog.Any("every", s.Config().Deck.Refresh))
			ticker = time.NewTicker(d)
			tick = ticker.C
		}
	}
	resetTicker()
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-s.chTopicDeckRegenerate:
			if !ok {
				return
			}
			s.log.Debug("regenerate requested", slog.Any("event", event))
			_, _ = s.Regenerate()
		case event, ok := <-s.chTopicConfigUpdated:
			if !ok {
				return
			}
			s.log.Debug("config updated", slog.Any("event", event))
			s.reload()
			resetTicker()
			_, _ = s.Regenerate()
		case <-tick:
			_, _ = s.Regenerate()
		}
	}
}
