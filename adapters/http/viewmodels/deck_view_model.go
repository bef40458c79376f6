package viewmodels

import (
	"github.com/cloudcopper/cardlist/domain/models"
)

type Deck struct {
	DeckID    models.DeckID
	CreatedAt int64
	Count     int
}

func NewDeck(deck *models.Deck) *Deck {
	if deck == nil {
		return nil
	}
	return &Deck{
		DeckID:    deck.DeckID,
		CreatedAt: deck.CreatedAt,
		Count:     deck.Count,
	}
}

// DeckJSON is the api representation of deck
type DeckJSON struct {
	ID        models.DeckID `json:"id"`
	CreatedAt int64         `json:"createdAt"`
	Count     int           `json:"count"`
	Cards     models.Cards  `json:"cards"`
}

func NewDeckJSON(deck *models.Deck) *DeckJSON {
	d := &DeckJSON{
		ID:        deck.DeckID,
		CreatedAt: deck.CreatedAt,
		Count:     deck.Count,
		Cards:     deck.Cards,
	}
	if d.Cards == nil {
		d.Cards = models.Cards{}
	}
	return d
}
