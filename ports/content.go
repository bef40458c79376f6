package ports

import "github.com/cloudcopper/cardlist/domain/models"

// ContentProvider is the source of fake content for cards.
// Implementations return an error when they are unable to produce a value.
type ContentProvider interface {
	// ContextualCard returns a bag of related fake person fields
	ContextualCard() (models.Contextual, error)
	// Paragraph returns a paragraph of prose
	Paragraph() (string, error)
	// Rand returns uniformly distributed integer in range of [min,max]
	Rand(min, max int) (int, error)
}
