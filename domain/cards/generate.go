// Package cards generates synthetic card records.
//
// The generator holds no state. Every call consumes values
// of given content provider only and returns freshly allocated cards
// owned by the caller.
package cards

import (
	"fmt"

	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/ports"
)

const (
	DefaultCount = 30

	ImageMin = 1 // first image of the pool
	ImageMax = 20
	WidthMin = 100 // px
	WidthMax = 700
)

// Generate returns exactly count cards in generation order.
// It fails with ErrInvalidArgument when count is negative
// and with ErrDependencyUnavailable when provider is unable to give value.
// No partial result is returned on failure.
// Nil provider is ErrDependencyUnavailable even for zero count.
func Generate(p ports.ContentProvider, count int) (models.Cards, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %v is negative", errors.ErrInvalidArgument, count)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no content provider", errors.ErrDependencyUnavailable)
	}

	result := make(models.Cards, 0, count)
	for i := 0; i < count; i++ {
		card, err := generateOne(p)
		if err != nil {
			return nil, fmt.Errorf("card %v: %w", i, err)
		}
		result = append(result, card)
	}
	return result, nil
}

// GenerateDefault returns DefaultCount cards
func GenerateDefault(p ports.ContentProvider) (models.Cards, error) {
	return Generate(p, DefaultCount)
}

func generateOne(p ports.ContentProvider) (*models.Card, error) {
	contextual, err := p.ContextualCard()
	if err != nil {
		return nil, unavailable("contextual card", err)
	}
	paragraph, err := p.Paragraph()
	if err != nil {
		return nil, unavailable("paragraph", err)
	}
	n, err := bounded(p, ImageMin, ImageMax)
	if err != nil {
		return nil, unavailable("image", err)
	}
	w, err := bounded(p, WidthMin, WidthMax)
	if err != nil {
		return nil, unavailable("width", err)
	}

	card := &models.Card{
		Contextual: contextual,
		Paragraph:  paragraph,
		Img: models.Image{
			Src:   ImageSrc(n),
			Width: ImageWidth(w),
		},
	}
	return card, nil
}

// bounded returns provider value and checks it is within [min,max]
func bounded(p ports.ContentProvider, min, max int) (int, error) {
	v, err := p.Rand(min, max)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("value %v out of range [%v,%v]", v, min, max)
	}
	return v, nil
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%w: %v: %w", errors.ErrDependencyUnavailable, what, err)
}
