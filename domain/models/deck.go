package models

import (
	"fmt"

	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/go-playground/validator/v10"
)

type DeckID = string

const EmptyDeckID = DeckID("")

type Decks []*Deck

// Deck is stored snapshot of generated cards.
// It keeps views stable between requests.
type Deck struct {
	DeckID    DeckID `gorm:"primaryKey;not null" validate:"required,validid"`
	CreatedAt int64  `gorm:"index;column:created_at" validate:"required,gt=0"` // UTC Unix time of creation
	Count     int    `gorm:"not null" validate:"min=0"`
	Cards     Cards  `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE;" validate:"-"`
}

func (model *Deck) Validate(val *validator.Validate) error {
	err := val.Struct(model)
	if err != nil {
		return err
	}

	if len(model.Cards) != model.Count {
		return fmt.Errorf("deck has %v cards, expected %v", len(model.Cards), model.Count)
	}
	for n, c := range model.Cards {
		if c.DeckID == "" {
			c.DeckID = model.DeckID
		}
		if c.DeckID != model.DeckID {
			return errors.ErrIncorrectCardID
		}
		c.Position = n
		if err := c.Validate(val); err != nil {
			return err
		}
	}

	return nil
}
