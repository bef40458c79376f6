package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cloudcopper/cardlist/adapters/http/viewmodels"
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/ports"
)

type ApiController struct {
	log      ports.Logger
	render   infra.Render
	provider ports.ContentProvider
	decks    DeckService
}

func NewApiController(log ports.Logger, render infra.Render, provider ports.ContentProvider, decks DeckService) *ApiController {
	log = log.With(slog.String("entity", "ApiController"))
	c := &ApiController{
		log:      log,
		render:   render,
		provider: provider,
		decks:    decks,
	}
	return c
}

// Cards responds freshly generated cards.
// The ?count=N defaults to cards.DefaultCount.
func (c *ApiController) Cards(w http.ResponseWriter, r *http.Request) {
	count := cards.DefaultCount
	if s := r.URL.Query().Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			c.renderError(w, fmt.Errorf("%w: count %q", errors.ErrInvalidArgument, s))
			return
		}
		count = n
	}
	if limit := c.decks.Config().Api.MaxCount; count > limit {
		c.renderError(w, fmt.Errorf("%w: count %v above %v", errors.ErrInvalidArgument, count, limit))
		return
	}

	result, err := cards.Generate(c.provider, count)
	if err != nil {
		c.renderError(w, err)
		return
	}
	c.render.JSON(w, http.StatusOK, result)
}

// Deck responds current deck
func (c *ApiController) Deck(w http.ResponseWriter, r *http.Request) {
	deck, err := c.decks.Current()
	if err != nil {
		c.renderError(w, err)
		return
	}
	c.render.JSON(w, http.StatusOK, viewmodels.NewDeckJSON(deck))
}

func (c *ApiController) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrDependencyUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.log.Warn("api error", slog.Int("status", status), slog.Any("err", err))
	c.render.JSON(w, status, map[string]string{"error": err.Error()})
}
