package repository

import (
	"fmt"

	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckRepository struct {
	db        ports.DB
	validator *validator.Validate
}

func NewDeckRepository(db ports.DB) (*DeckRepository, error) {
	r := &DeckRepository{
		db:        db,
		validator: lib.NewValidator(),
	}
	_, err := r.FindAll()
	return r, err
}

// Create stores deck with all its cards.
// The cards get new CardID and position in order of deck.
func (r *DeckRepository) Create(model *models.Deck) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		for _, c := range model.Cards {
			if c.CardID == "" {
				c.CardID = uuid.New().String()
			}
		}

		if err := model.Validate(r.validator); err != nil {
			return fmt.Errorf("invalid deck object: %w", err)
		}

		if err := db.Create(model).Error; err != nil {
			return fmt.Errorf("unable to save deck object: %w", err)
		}
		return nil
	})
	return err
}

func (r *DeckRepository) Delete(model *models.Deck) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := db.Where("deck_id = ?", model.DeckID).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		return db.Delete(&models.Deck{}, "deck_id = ?", model.DeckID).Error
	})
	return err
}

// FindAll returns all decks without cards, newest first
func (r *DeckRepository) FindAll() ([]*models.Deck, error) {
	var decks []*models.Deck
	db := r.db.Order("created_at DESC").Order("deck_id DESC")
	err := db.Find(&decks).Error
	return decks, err
}

// FindLatest returns newest deck or ports.ErrRecordNotFound
func (r *DeckRepository) FindLatest(flags ...interface{}) (*models.Deck, error) {
	var deck *models.Deck
	db := r.withFlags(r.db, flags...)
	db = db.Order("created_at DESC").Order("deck_id DESC")
	err := db.First(&deck).Error
	return deck, err
}

func (r *DeckRepository) FindByID(id models.DeckID, flags ...interface{}) (*models.Deck, error) {
	var deck *models.Deck
	db := r.withFlags(r.db, flags...)
	err := db.First(&deck, "deck_id = ?", id).Error
	return deck, err
}

// IterateCards iterates cards of deck in position order
func (r *DeckRepository) IterateCards(id models.DeckID, callback func(*models.Card) (bool, error)) error {
	db := r.db.Where("deck_id = ?", id).Order("position ASC")
	return iterateAll[models.Card](db, callback)
}

func (r *DeckRepository) withFlags(db ports.DB, flags ...interface{}) ports.DB {
	for _, flag := range flags {
		switch v := flag.(type) {
		case ports.WithRelationship:
			if !v {
				continue
			}
			db = db.Preload("Cards", func(db ports.DB) ports.DB {
				return db.Order("position ASC")
			})
		default:
			panic(flag)
		}
	}
	return db
}
