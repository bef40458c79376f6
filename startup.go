package cardlist

import (
	"log/slog"

	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
)

func startup(log ports.Logger, bus ports.EventBus, deckService *DeckService) error {
	//
	// Create first deck
	//
	deck, err := deckService.Regenerate()
	if err != nil {
		log.Error("unable create first deck", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateFirstDeckError)
	}
	log.Info("first deck created", slog.String("deckID", deck.DeckID), slog.Int("count", deck.Count))

	//
	// Watch config file, if it is in os filesystem
	//
	if path := config.ConfigFilePath(); path != "" {
		bus.Pub(ports.TopicConfigWatch, ports.Event{path})
	}

	return nil
}
