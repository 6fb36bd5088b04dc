package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/TrainOps-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/TrainOps-api/internal/interfaces/http"
	"github.com/jhoicas/TrainOps-api/pkg/config"
	"github.com/jhoicas/TrainOps-api/pkg/logger"
	"github.com/jhoicas/TrainOps-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Métricas: registro propio para no mezclar con el global.
	var reg *prometheus.Registry
	var observer store.TransitionObserver
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		observer = metrics.NewTransitionMetrics(reg, store.Outcome)
	}

	opts := []store.Option{}
	if observer != nil {
		opts = append(opts, store.WithObserver(observer))
	}
	domainStore := store.NewStore(memory.NewTxRunner(), log.Component("store"), opts...)

	if cfg.Store.SeedDemo {
		directorID, err := store.SeedDemo(context.Background(), domainStore)
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos demo")
		}
		log.Info().
			Str("director_id", directorID).
			Uint64("version", domainStore.Snapshot().Version).
			Msg("datos demo cargados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "TrainOps API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": domainStore.Snapshot().Version,
		})
	})
	if reg != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:            domainStore,
		PDF:              infrapdf.NewMarotoPDFGenerator(),
		Issuer:           cfg.App.Name,
		JWTSecret:        cfg.JWT.Secret,
		JWTIssuer:        cfg.JWT.Issuer,
		JWTExpMinutes:    cfg.JWT.Expiration,
		SimulatedLatency: time.Duration(cfg.HTTP.SimulatedLatency) * time.Millisecond,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
