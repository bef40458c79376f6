package controllers

import (
	"log/slog"
	"net/http"

	"github.com/cloudcopper/cardlist/adapters/http/viewmodels"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/ports"
)

type FrontPageController struct {
	log    ports.Logger
	render infra.Render
	decks  DeckService
}

func NewFrontPageController(log ports.Logger, render infra.Render, decks DeckService) *FrontPageController {
	log = log.With(slog.String("entity", "FrontPageController"))
	c := &FrontPageController{
		log:    log,
		render: render,
		decks:  decks,
	}
	return c
}

type nav struct {
	Href  string
	Title string
	Text  string
}

var navs = []nav{
	{"/height-fixed", "Fixed height", "Every card has the same height. Long text is clipped."},
	{"/height-dynamic", "Dynamic height", "Card height follows its text and image width."},
}

func (c *FrontPageController) Index(w http.ResponseWriter, r *http.Request) {
	errors := []string{}
	deck, err := c.decks.Current()
	if err != nil {
		c.log.Error("unable to get current deck", slog.Any("err", err))
		errors = append(errors, err.Error())
	}

	data := struct {
		Errors []string
		Navs   []nav
		Deck   *viewmodels.Deck
	}{
		Errors: errors,
		Navs:   navs,
		Deck:   viewmodels.NewDeck(deck),
	}

	c.render.HTML(w, http.StatusOK, "navs", data)
}

// NotFound is a custom 404 handler
func (c *FrontPageController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.render.HTML(w, http.StatusNotFound, "errors/404", struct{ Path string }{r.URL.Path})
}
