package controllers

import (
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra/config"
)

// DeckService is what controllers need from the deck owner
type DeckService interface {
	Current() (*models.Deck, error)
	Regenerate() (*models.Deck, error)
	Config() *config.Config
}
