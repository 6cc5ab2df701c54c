package main

import (
	"math/rand/v2"
	"os"
	"runtime"

	"sticker-goblin/internal/catalog"
	"sticker-goblin/internal/config"
	"sticker-goblin/internal/controllers"
	"sticker-goblin/internal/debug/timing"
	"sticker-goblin/internal/draw"
	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"
	"sticker-goblin/internal/opencv/conversion"
	"sticker-goblin/internal/services"
	"sticker-goblin/internal/shutdown"
	"sticker-goblin/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Sticker Goblin"
	AppID      = "com.stickergoblin.app"
	AppVersion = "1.0.0"
)

const component = "Application"

// Application holds the wired components for the lifetime of the window
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.DrawController
	view       *views.MainView

	thumbnails *services.ThumbnailService
	scheduler  *views.FyneScheduler
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logger.NewConsoleLogger(logger.ErrorLevel).Error(component, err, map[string]interface{}{
			"stage": "config",
		})
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel(), cfg.Log.JSON)

	application := NewApplication(cfg, appLogger)
	application.Run()
}

// NewApplication loads the catalog, preloads thumbnails and wires the
// controller to the window. A catalog that fails to load still yields a
// window that explains the failure.
func NewApplication(cfg *config.Config, appLogger logger.Logger) *Application {
	appLogger.Info(component, "application starting", map[string]interface{}{
		"version":      AppVersion,
		"go_version":   runtime.Version(),
		"catalog":      cfg.Catalog.Path,
		"tie_mode":     cfg.Draw.TieMode,
		"vowel_source": cfg.Draw.VowelSource,
		"log_level":    cfg.LogLevel().String(),
	})

	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	timings := timing.NewTracker()
	manager := shutdown.NewManager(appLogger)

	catalogService := services.NewCatalogService(
		catalog.Options{VowelSource: cfg.VowelSource()},
		appLogger,
		timings,
	)
	sheets, loadErr := catalogService.LoadFile(manager.Context(), cfg.Catalog.Path)

	thumbnails := services.NewThumbnailService(
		conversion.ThumbnailDecoder{},
		models.NewThumbnailRepository(),
		cfg.ThumbnailBounds(),
		cfg.ResolveAsset,
		appLogger,
		timings,
	)
	if loadErr == nil {
		if err := thumbnails.Preload(manager.Context(), sheets); err != nil {
			appLogger.Warning(component, "thumbnail preload interrupted", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	seed := cfg.Draw.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	engine := draw.NewSeededEngine(seed, cfg.TieMode())
	appLogger.Debug(component, "draw engine ready", map[string]interface{}{
		"seed":     seed,
		"tie_mode": engine.Mode().String(),
	})

	scheduler := views.NewFyneScheduler()
	controller := controllers.NewDrawController(
		sheets,
		loadErr,
		engine,
		thumbnails,
		scheduler,
		controllers.Options{
			Frames:      cfg.Animation.Frames,
			Delay:       cfg.FrameDelay(),
			CatalogPath: cfg.Catalog.Path,
		},
		appLogger,
		timings,
	)

	view := views.NewMainView(window)
	view.SetShuffleHandler(func() { controller.Press() })
	view.SetCatalogInfo(sheets, cfg.TieMode())
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		thumbnails: thumbnails,
		scheduler:  scheduler,
		shutdown:   manager,
	}
	application.registerShutdown()
	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks in the Fyne event loop
func (a *Application) Run() {
	stopListening := a.shutdown.Listen()
	defer stopListening()

	a.controller.Start()
	a.view.Show()

	a.logger.Info(component, "window shown", map[string]interface{}{
		"width":  a.config.Window.Width,
		"height": a.config.Window.Height,
	})

	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info(component, "application terminated", nil)
}

// registerShutdown orders teardown: the event loop quits last, after the
// animation timer stops and cached thumbnails are released
func (a *Application) registerShutdown() {
	a.shutdown.Register("fyne", shutdown.ShutdownFunc(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register("thumbnails", shutdown.ShutdownFunc(a.thumbnails.Cleanup))
	a.shutdown.Register("scheduler", a.scheduler)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info(component, "window close requested", map[string]interface{}{
			"draws": a.controller.Draws(),
		})
		go a.shutdown.Shutdown()
	})
}
