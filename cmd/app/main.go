package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyjourney/booking/api"
	"github.com/skyjourney/booking/config"
	"github.com/skyjourney/booking/internal/bootstrap"
	"github.com/skyjourney/booking/internal/cache"
	"github.com/skyjourney/booking/internal/catalog"
	"github.com/skyjourney/booking/internal/service/booking"
	"github.com/skyjourney/booking/internal/service/flow"
	"github.com/skyjourney/booking/internal/service/passengers"
	"github.com/skyjourney/booking/internal/service/search"
	"github.com/skyjourney/booking/internal/service/selection"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *catalog.Store
	if cfg.Catalog.AirportsPath != "" && cfg.Catalog.FlightsPath != "" {
		store, err = catalog.NewFromFiles(cfg.Catalog.AirportsPath, cfg.Catalog.FlightsPath)
	} else {
		store, err = catalog.New()
	}
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	resultsCache := cache.New[search.SearchResults](time.Duration(cfg.Search.ResultsCacheTTLSeconds) * time.Second)

	searchService := search.NewSearchService(store, resultsCache)
	selectionService := selection.NewSelectionService(store)
	passengerService := passengers.NewPassengerService()
	flowService := flow.NewFlowService(searchService, selectionService, passengerService)
	bookingService := booking.NewBookingService(booking.NewRandomReferenceSource())

	if err := bootstrap.Run(ctx, cfg,
		api.NewCatalogHandler(store),
		api.NewSearchHandler(searchService),
		api.NewSelectionHandler(selectionService),
		api.NewFlowHandler(flowService),
		api.NewPassengerHandler(passengerService),
		api.NewBookingHandler(bookingService),
	); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
