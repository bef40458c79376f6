package repository

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/cloudcopper/cardlist/adapters"
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func testDeckRepository(t *testing.T) *DeckRepository {
	assert := require.New(t)
	log := slog.Default()
	source := infra.SourceSqliteNamedMemory(ulid.Make().String())
	db, closeDb, err := infra.NewDatabase(log, infra.DriverSqlite, source)
	assert.NoError(err)
	t.Cleanup(closeDb)
	assert.NoError(db.AutoMigrate(new(models.Deck), new(models.Card)))
	r, err := NewDeckRepository(db)
	assert.NoError(err)
	return r
}

func testDeck(t *testing.T, count int, createdAt int64) *models.Deck {
	assert := require.New(t)
	p := adapters.NewLoremContentProvider(slog.Default(), createdAt)
	result, err := cards.Generate(p, count)
	assert.NoError(err)
	return &models.Deck{
		DeckID:    ulid.Make().String(),
		CreatedAt: createdAt,
		Count:     count,
		Cards:     result,
	}
}

func TestDeckRepositoryCreateFind(t *testing.T) {
	assert := require.New(t)
	r := testDeckRepository(t)

	_, err := r.FindLatest()
	assert.ErrorIs(err, ports.ErrRecordNotFound)

	deck := testDeck(t, 30, time.Now().UTC().Unix())
	expected := deck.Cards.Clone()
	assert.NoError(r.Create(deck))

	found, err := r.FindByID(deck.DeckID, ports.WithRelationship(true))
	assert.NoError(err)
	assert.Equal(deck.DeckID, found.DeckID)
	assert.Equal(30, found.Count)
	assert.Len(found.Cards, 30)
	for n, c := range found.Cards {
		assert.Equal(n, c.Position)
		assert.NotEmpty(c.CardID)
		assert.Equal(expected[n].Contextual, c.Contextual)
		assert.Equal(expected[n].Paragraph, c.Paragraph)
		assert.Equal(expected[n].Img, c.Img)
	}

	// without relationship there are no cards
	found, err = r.FindByID(deck.DeckID)
	assert.NoError(err)
	assert.Empty(found.Cards)
}

func TestDeckRepositoryEmptyDeck(t *testing.T) {
	assert := require.New(t)
	r := testDeckRepository(t)

	deck := testDeck(t, 0, 1000)
	assert.NoError(r.Create(deck))
	found, err := r.FindLatest(ports.WithRelationship(true))
	assert.NoError(err)
	assert.Equal(deck.DeckID, found.DeckID)
	assert.Empty(found.Cards)
}

func TestDeckRepositoryInvalid(t *testing.T) {
	testCases := []struct {
		desc   string
		modify func(*models.Deck)
	}{
		{"no id", func(d *models.Deck) { d.DeckID = "" }},
		{"bad id", func(d *models.Deck) { d.DeckID = "../deck" }},
		{"no created at", func(d *models.Deck) { d.CreatedAt = 0 }},
		{"wrong count", func(d *models.Deck) { d.Count = 3 }},
		{"foreign card", func(d *models.Deck) { d.Cards[0].DeckID = "other" }},
		{"bad image", func(d *models.Deck) { d.Cards[1].Img.Src = "/tmp/1.png" }},
		{"bad width", func(d *models.Deck) { d.Cards[1].Img.Width = "100em" }},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert := require.New(t)
			r := testDeckRepository(t)
			deck := testDeck(t, 2, 1000)
			tC.modify(deck)
			assert.Error(r.Create(deck))
			decks, err := r.FindAll()
			assert.NoError(err)
			assert.Empty(decks)
		})
	}
}

func TestDeckRepositoryLatestAndDelete(t *testing.T) {
	assert := require.New(t)
	r := testDeckRepository(t)

	decks := []*models.Deck{}
	for x := 0; x < 3; x++ {
		deck := testDeck(t, 5, int64(1000+x))
		assert.NoError(r.Create(deck))
		decks = append(decks, deck)
	}

	latest, err := r.FindLatest()
	assert.NoError(err)
	assert.Equal(decks[2].DeckID, latest.DeckID)

	all, err := r.FindAll()
	assert.NoError(err)
	assert.Len(all, 3)
	assert.Equal(decks[2].DeckID, all[0].DeckID)
	assert.Equal(decks[0].DeckID, all[2].DeckID)

	assert.NoError(r.Delete(decks[2]))
	latest, err = r.FindLatest()
	assert.NoError(err)
	assert.Equal(decks[1].DeckID, latest.DeckID)

	// cards of deleted deck are gone
	n := 0
	assert.NoError(r.IterateCards(decks[2].DeckID, func(*models.Card) (bool, error) {
		n++
		return true, nil
	}))
	assert.Zero(n)
}

func TestDeckRepositoryIterateCards(t *testing.T) {
	assert := require.New(t)
	r := testDeckRepository(t)
	deck := testDeck(t, 10, 1000)
	assert.NoError(r.Create(deck))

	positions := []int{}
	assert.NoError(r.IterateCards(deck.DeckID, func(c *models.Card) (bool, error) {
		positions = append(positions, c.Position)
		return len(positions) < 4, nil
	}))
	assert.Equal([]int{0, 1, 2, 3}, positions)

	err := r.IterateCards(deck.DeckID, func(c *models.Card) (bool, error) {
		return false, fmt.Errorf("stop")
	})
	assert.EqualError(err, "stop")
}
