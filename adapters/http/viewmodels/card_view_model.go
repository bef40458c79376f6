package viewmodels

import (
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/models"
)

type Card struct {
	Number    int // 1-based position within deck
	Name      string
	Username  string
	Avatar    string
	Email     string
	Dob       string
	Phone     string
	Website   string
	City      string
	Street    string
	Company   string
	Catch     string
	Paragraph string
	ImgSrc    string
	ImgWidth  string
	ImgNumber int
	ImgPixels int
}

func NewCard(card *models.Card) *Card {
	c := &Card{
		Number:    card.Position + 1,
		Name:      card.Name,
		Username:  card.Username,
		Avatar:    card.Avatar,
		Email:     card.Email,
		Dob:       card.Dob,
		Phone:     card.Phone,
		Website:   card.Website,
		City:      card.Address.City,
		Street:    card.Address.Street,
		Company:   card.Company.Name,
		Catch:     card.Company.CatchPhrase,
		Paragraph: card.Paragraph,
		ImgSrc:    card.Img.Src,
		ImgWidth:  card.Img.Width,
	}
	// Stored cards are validated, so parse errors leave zero values only
	c.ImgNumber, _ = cards.ParseImageSrc(card.Img.Src)
	c.ImgPixels, _ = cards.ParseImageWidth(card.Img.Width)
	return c
}

func NewCards(a models.Cards) []*Card {
	ret := []*Card{}
	for _, card := range a {
		ret = append(ret, NewCard(card))
	}
	return ret
}
