package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pocketdiner/pocket-diner/internal/cart"
	"github.com/pocketdiner/pocket-diner/internal/config"
	"github.com/pocketdiner/pocket-diner/internal/es"
	"github.com/pocketdiner/pocket-diner/internal/events"
	"github.com/pocketdiner/pocket-diner/internal/httpserver"
	"github.com/pocketdiner/pocket-diner/internal/logging"
	"github.com/pocketdiner/pocket-diner/internal/models"
	"github.com/pocketdiner/pocket-diner/internal/repo"
	"github.com/pocketdiner/pocket-diner/internal/service"
	"github.com/pocketdiner/pocket-diner/internal/session"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(httpserver.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("db init error: %v", err)
	}

	menuRepo := &repo.GormRepo{DB: db}
	if err := menuRepo.SeedMenu(initCtx, models.DefaultMenu()); err != nil {
		cancel()
		log.Fatalf("menu seed error: %v", err)
	}
	cancel()

	menuService := &service.MenuService{
		Repo:  menuRepo,
		Index: cfg.ESIndex,
	}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		menuService.ES = esClient
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, logger)
	}

	newCart := func() *cart.Ledger {
		return cart.New(cfg.TaxRate, cart.DemoSeed())
	}
	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionTTL, newCart)
	sessions.OnCreate(func(st *session.State) {
		producer.WatchLedger(st.ID.String(), st.Cart)
	})

	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	sessions.StartJanitor(janitorCtx, time.Minute)

	httpserver.Register(e, &httpserver.Deps{
		MenuHandler:     &httpserver.MenuHTTP{Svc: menuService},
		CartHandler:     &httpserver.CartHTTP{Menu: menuService},
		CheckoutHandler: &httpserver.CheckoutHTTP{Producer: producer},
		Sessions:        sessions,
	})

	go func() {
		logger.Info("starting server", "service", cfg.ServiceName, "port", cfg.ServerPort)
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close", "error", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
