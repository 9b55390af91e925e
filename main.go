package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"billettlyst/config"
	"billettlyst/handlers"
	"billettlyst/internal/storage"
	"billettlyst/services/catalog"
	"billettlyst/services/content"
	"billettlyst/services/discovery"
	"billettlyst/services/profile"
	"billettlyst/services/wishlist"
	"billettlyst/utils"
)

func main() {
	configPath := os.Getenv("BILLETTLYST_CONFIG")
	if configPath == "" {
		configPath = "billettlyst.json"
	}

	settings, err := config.NewManager(configPath).Load()
	if err != nil {
		log.Fatalf("[main] load settings: %v", err)
	}

	if settings.Log.Path != "" {
		rotated := &lumberjack.Logger{
			Filename:   settings.Log.Path,
			MaxSize:    settings.Log.MaxSizeMB,
			MaxBackups: settings.Log.MaxBackups,
			MaxAge:     settings.Log.MaxAgeDays,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}

	// The database file can be briefly locked by a previous instance shutting
	// down, so give the open a few tries before giving up.
	var kv *storage.SQLiteStore
	err = retry.Do(
		func() error {
			var openErr error
			kv, openErr = storage.NewSQLite(settings.Storage.DatabasePath)
			return openErr
		},
		retry.Attempts(5),
		retry.Delay(200*time.Millisecond),
	)
	if err != nil {
		log.Fatalf("[main] open storage: %v", err)
	}
	defer kv.Close()

	catalogClient := catalog.NewClient(settings.Catalog)
	contentClient := content.NewClient(settings.Content)

	sessionCache := discovery.NewSessionCache(afero.NewOsFs(), settings.Storage.CachePath)
	discoverySvc := discovery.NewService(catalogClient, sessionCache)
	profileSvc := profile.NewService(contentClient, kv)
	wishlists := wishlist.NewStores(kv)

	categoryHandler := handlers.NewCategoryHandler(discoverySvc, wishlists)
	wishlistHandler := handlers.NewWishlistHandler(wishlists)
	homeHandler := handlers.NewHomeHandler(discoverySvc)
	eventHandler := handlers.NewEventHandler(discoverySvc)
	dashboardHandler := handlers.NewDashboardHandler(profileSvc)

	router := utils.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories/{slug}", categoryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/wishlist/{kind}", wishlistHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/wishlist/{kind}", wishlistHandler.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/home/festivals", homeHandler.Festivals).Methods(http.MethodGet)
	api.HandleFunc("/home/city-events", homeHandler.CityEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", eventHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/content/events/{id}", dashboardHandler.EventDocument).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", dashboardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", dashboardHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", dashboardHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", dashboardHandler.Session).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         settings.Server.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Printf("[main] listening on %s", settings.Server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[main] server: %v", err)
	}
}
