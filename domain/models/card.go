package models

import (
	"github.com/go-playground/validator/v10"
)

type CardID = string

type Cards []*Card

// Card is one generated synthetic item.
// The Contextual is embedded, so json encoding has flat
// contextual fields next to paragraph and img.
type Card struct {
	CardID     CardID `gorm:"primaryKey;not null" json:"-" yaml:"-"`
	DeckID     DeckID `gorm:"index;not null" json:"-" yaml:"-"`
	Position   int    `gorm:"index;not null" json:"-" yaml:"-" validate:"min=0"`
	Contextual `yaml:",inline"`
	Paragraph  string `json:"paragraph" yaml:"paragraph"`
	Img        Image  `gorm:"embedded;embeddedPrefix:img_" json:"img" yaml:"img" validate:"required"`
}

// Image references one of fixed pool of placeholder images
type Image struct {
	Src   string `json:"src" yaml:"src" validate:"required,startswith=/images/,endswith=.jpeg"`
	Width string `json:"width" yaml:"width" validate:"required,endswith=px"`
}

// Contextual is set of fake but related to each other person fields
type Contextual struct {
	Name     string  `json:"name" yaml:"name"`
	Username string  `json:"username" yaml:"username"`
	Avatar   string  `json:"avatar" yaml:"avatar"`
	Email    string  `json:"email" yaml:"email"`
	Dob      string  `json:"dob" yaml:"dob"`
	Phone    string  `json:"phone" yaml:"phone"`
	Address  Address `gorm:"embedded;embeddedPrefix:address_" json:"address" yaml:"address"`
	Website  string  `json:"website" yaml:"website"`
	Company  Company `gorm:"embedded;embeddedPrefix:company_" json:"company" yaml:"company"`
}

type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `gorm:"embedded;embeddedPrefix:geo_" json:"geo" yaml:"geo"`
}

type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	Bs          string `json:"bs" yaml:"bs"`
}

func (model *Card) Validate(val *validator.Validate) error {
	return val.Struct(model)
}

// Clone returns deep copy of cards
func (a Cards) Clone() Cards {
	if a == nil {
		return nil
	}
	b := make(Cards, 0, len(a))
	for _, c := range a {
		if c == nil {
			b = append(b, nil)
			continue
		}
		card := *c
		b = append(b, &card)
	}
	return b
}
