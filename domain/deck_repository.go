package domain

import "github.com/cloudcopper/cardlist/domain/models"

type DeckRepository interface {
	Create(model *models.Deck) error
	Delete(model *models.Deck) error
	FindAll() ([]*models.Deck, error)
	FindLatest(flags ...interface{}) (*models.Deck, error)
	FindByID(id models.DeckID, flags ...interface{}) (*models.Deck, error)
	IterateCards(id models.DeckID, callback func(*models.Card) (bool, error)) error
}
