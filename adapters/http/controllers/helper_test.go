package controllers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudcopper/cardlist/adapters"
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/cloudcopper/cardlist/web"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeDecks struct {
	deck        *models.Deck
	err         error
	cfg         *config.Config
	regenerated int
}

func (f *fakeDecks) Current() (*models.Deck, error) {
	return f.deck, f.err
}

func (f *fakeDecks) Regenerate() (*models.Deck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.regenerated++
	return f.deck, nil
}

func (f *fakeDecks) Config() *config.Config {
	return f.cfg
}

type offlineProvider struct{}

const errOffline = lib.Error("offline")

func (offlineProvider) ContextualCard() (models.Contextual, error) {
	return models.Contextual{}, errOffline
}
func (offlineProvider) Paragraph() (string, error)     { return "", errOffline }
func (offlineProvider) Rand(min, max int) (int, error) { return 0, errOffline }

func testDeck(t *testing.T, count int) *models.Deck {
	assert := require.New(t)
	provider := adapters.NewLoremContentProvider(slog.Default(), 1)
	defer provider.Close()
	result, err := cards.Generate(provider, count)
	assert.NoError(err)
	for n, c := range result {
		c.Position = n
	}
	return &models.Deck{DeckID: "01JTESTDECK", CreatedAt: 1700000000, Count: count, Cards: result}
}

// testRouter returns router with all controllers routes
func testRouter(t *testing.T, decks DeckService, provider ports.ContentProvider) http.Handler {
	log := slog.Default()
	render := infra.NewRender(web.FS, "layout")

	frontPageController := NewFrontPageController(log, render, decks)
	listController := NewListController(log, render, decks)
	apiController := NewApiController(log, render, provider, decks)
	imageController := NewImageController(log, render)
	aboutPageController := NewAboutPageController(log, render)

	r := chi.NewRouter()
	r.Get("/", frontPageController.Index)
	r.Get("/height-fixed", listController.HeightFixed)
	r.Get("/height-dynamic", listController.HeightDynamic)
	r.Post("/deck", listController.Regenerate)
	r.Get("/api/cards", apiController.Cards)
	r.Get("/api/deck", apiController.Deck)
	r.Get("/images/{name}", imageController.Get)
	r.Get("/about", aboutPageController.Index)
	r.NotFound(frontPageController.NotFound)
	return r
}

func testRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
