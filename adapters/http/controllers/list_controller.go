package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cloudcopper/cardlist/adapters/http/viewmodels"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/ports"
)

type ListController struct {
	log    ports.Logger
	render infra.Render
	decks  DeckService
}

func NewListController(log ports.Logger, render infra.Render, decks DeckService) *ListController {
	log = log.With(slog.String("entity", "ListController"))
	c := &ListController{
		log:    log,
		render: render,
		decks:  decks,
	}
	return c
}

func (c *ListController) HeightFixed(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "height-fixed", "Fixed height")
}

func (c *ListController) HeightDynamic(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "height-dynamic", "Dynamic height")
}

// Regenerate generates new deck and redirects back to the referer page.
// The deck is generated before redirect, so the page shows it already.
func (c *ListController) Regenerate(w http.ResponseWriter, r *http.Request) {
	c.log.Info("regenerate requested", slog.String("remote", r.RemoteAddr))
	if _, err := c.decks.Regenerate(); err != nil { // 500
		c.log.Error("unable to regenerate deck", slog.Any("err", err))
		c.render.HTML(w, http.StatusInternalServerError, "errors/server-error", struct{ Error error }{err})
		return
	}

	http.Redirect(w, r, localReferer(r), http.StatusSeeOther)
}

// localReferer returns path and query of referer of same host,
// otherwise the root path
func localReferer(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || (u.Host != "" && u.Host != r.Host) || (u.Scheme != "" && u.Host == "") {
		return "/"
	}
	// "//host" and "/\host" are taken by browsers as other host
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.HasPrefix(u.Path, "/\\") {
		return "/"
	}
	back := u.Path
	if u.RawQuery != "" {
		back += "?" + u.RawQuery
	}
	return back
}

func (c *ListController) list(w http.ResponseWriter, r *http.Request, name, title string) {
	deck, err := c.decks.Current()
	if err != nil { // 500
		c.log.Error("unable to get current deck", slog.Any("err", err))
		c.render.HTML(w, http.StatusInternalServerError, "errors/server-error", struct{ Error error }{err})
		return
	}

	view := c.decks.Config().View
	cards, page, pages := helperPagination(r, deck.Cards, view.PerPage)

	data := struct {
		Title       string
		Path        string
		Deck        *viewmodels.Deck
		Cards       []*viewmodels.Card
		Page        int
		Pages       int
		PerPage     int
		FixedHeight int
	}{
		Title:       title,
		Path:        r.URL.Path,
		Deck:        viewmodels.NewDeck(deck),
		Cards:       viewmodels.NewCards(cards),
		Page:        page,
		Pages:       pages,
		PerPage:     view.PerPage,
		FixedHeight: view.FixedHeight,
	}
	c.render.HTML(w, http.StatusOK, name, data)
}
