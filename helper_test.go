package cardlist

import (
	"log/slog"
	"testing"
	"time"

	"github.com/cloudcopper/cardlist/adapters"
	"github.com/cloudcopper/cardlist/adapters/repository"
	"github.com/cloudcopper/cardlist/domain"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

type testFakeAppInternals struct {
	db  ports.DB
	bus ports.EventBus
	dr  domain.DeckRepository
	cp  *adapters.LoremContentProvider
	ds  *DeckService
}

// testFakeApp creates deck service over own in memory database
// and calls callback to continue the test
func testFakeApp(t *testing.T, cfg *config.Config, loadConfig func() (*config.Config, error), callback func(*testFakeAppInternals)) {
	var err error
	assert := require.New(t)
	noErr := func(err error) {
		assert.NoError(err)
		if err != nil {
			t.FailNow()
		}
	}

	// Create logger
	log := slog.Default()
	// Create eventbus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()
	// Create database
	driver := infra.DriverSqlite
	source := infra.SourceSqliteNamedMemory(ulid.Make().String())
	db, closeDb, err := infra.NewDatabase(log, driver, source)
	noErr(err)
	defer closeDb()
	noErr(db.AutoMigrate(new(models.Deck), new(models.Card)))
	// Create deck repository
	deckRepository, err := repository.NewDeckRepository(db)
	noErr(err)
	// Create content provider
	provider := adapters.NewLoremContentProvider(log, 42)
	defer provider.Close()
	// Create deck service
	deckService := NewDeckService(log, bus, provider, deckRepository, cfg, loadConfig)
	defer deckService.Close()

	// Call the callback to continue test
	app := &testFakeAppInternals{
		db:  db,
		bus: bus,
		dr:  deckRepository,
		cp:  provider,
		ds:  deckService,
	}

	callback(app)
}

// waitEvent waits for event on ch or fails after timeout
func waitEvent(t *testing.T, ch chan ports.Event, timeout time.Duration) ports.Event {
	select {
	case event := <-ch:
		return event
	case <-time.After(timeout):
		require.FailNow(t, "no event within timeout", "%v", timeout)
	}
	return nil
}
