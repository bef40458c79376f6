package cardlist

import (
	"embed"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudcopper/cardlist/adapters"
	httpAdapter "github.com/cloudcopper/cardlist/adapters/http"
	"github.com/cloudcopper/cardlist/adapters/http/controllers"
	"github.com/cloudcopper/cardlist/adapters/repository"
	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/infra/config"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/cloudcopper/cardlist/web"
)

// ConfigWatcherID is id of watcher service of config file.
// Its TopicFileModified is ports.TopicConfigUpdated.
const ConfigWatcherID = "config"

// App execute application and returns error, when complete by ctrl-c.
// The application reads config, templates and static web files
// from layered filesystem.
// Layered filesystem consists of next layers:
//   - ./ of ${CARDLIST_ROOT} (optional)
//   - ./ of current working directory
//   - embed.fs given as parameter (cmdFS)
//   - package web embed.fs
func App(log ports.Logger, cmdFS embed.FS) error {
	// EventBus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()

	// Create layered filesystem
	fs, err := infra.NewLayerFileSystem(config.TopRootFileSystemPath, os.Getwd, cmdFS, web.FS)
	if err != nil {
		log.Error("unable to create layered filesystem!!!", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetLayerFilesystemError)
	}

	// Load configuration
	loadConfig := func() (*config.Config, error) {
		return config.LoadConfig(log, fs)
	}
	cfg, err := loadConfig()
	if err != nil {
		log.Error("unable to load config!!!", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetLoadConfigError)
	}

	// Open database
	driver := infra.DriverSqlite
	source := infra.SourceSqliteInMemory
	db, closeDb, err := infra.NewDatabase(log, driver, source)
	if err != nil {
		log.Error("unable to create database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetCreateDatabaseError)
	}
	defer closeDb()
	// Sync database
	if err := db.AutoMigrate(new(models.Deck), new(models.Card)); err != nil {
		log.Error("unable sync database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetMigrateDatabaseError)
	}
	// Create deck repository
	deckRepository, err := repository.NewDeckRepository(db)
	if err != nil {
		log.Error("unable create deck repository", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateDeckRepoError)
	}

	// Create content provider
	provider := adapters.NewLoremContentProvider(log, cfg.Deck.Seed)
	defer provider.Close()
	// Create deck service:
	// - generate deck on regenerate request
	// - reload config and generate deck on config file update
	// - periodic deck refresh
	deckService := NewDeckService(log, bus, provider, deckRepository, cfg, loadConfig)
	defer deckService.Close()
	// Create filesystem watcher for config file
	configWatcher, err := infra.NewWatcherService(ConfigWatcherID, log, bus)
	if err != nil {
		log.Error("unable to create new watcher service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateConfigWatcher)
	}
	defer configWatcher.Close()

	// Perform neccesery startup operations
	if err := startup(log, bus, deckService); err != nil {
		return err
	}

	// Create router
	router := httpAdapter.NewRouter(log)
	// Create render object
	// It also loads templates
	render := infra.NewRender(fs, "layout")
	// Create controllers
	frontPageController := controllers.NewFrontPageController(log, render, deckService)
	listController := controllers.NewListController(log, render, deckService)
	apiController := controllers.NewApiController(log, render, provider, deckService)
	imageController := controllers.NewImageController(log, render)
	aboutPageController := controllers.NewAboutPageController(log, render)
	// Add routes
	router.Get("/", frontPageController.Index)
	router.Get("/height-fixed", listController.HeightFixed)
	router.Get("/height-dynamic", listController.HeightDynamic)
	router.Post("/deck", listController.Regenerate)
	router.Get("/api/cards", apiController.Cards)
	router.Get("/api/deck", apiController.Deck)
	router.Get("/about", aboutPageController.Index)
	// WARN The route /images/{n}.jpeg does not work with chi
	// Please see https://github.com/go-chi/chi/issues/758
	// So the imageController.Get handles the suffix
	router.Get("/images/{name}", imageController.Get)
	// Static file handler
	fileServer := http.FileServer(http.FS(fs))
	router.Handle("/static/*", fileServer)
	// 404 handler
	router.NotFound(frontPageController.NotFound)
	// Create http server
	// The router must has all routes already
	// It will start server in separate goroutine
	addr := config.Listen
	httpServer, err := infra.NewWebServer(log, addr, router)
	if err != nil {
		log.Error("unable create web server", slog.Any("err", err), slog.String("addr", addr))
		return lib.NewErrorCode(err, errors.RetCreateWebServerError)
	}

	// Add ctrl-c shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	log.Info("press ctrl-c to exit")
	// Wait for ctrl-c
	<-c

	// Close http server
	httpServer.Close()

	// Close watcher by ctrl-c
	configWatcher.Close()
	return nil
}
