// @title        CarePlus API
// @version      1.0
// @description  API REST de recepcionistas de CarePlus.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/Careplus-api/docs"
	"github.com/jhoicas/Careplus-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Careplus-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Careplus-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Careplus-api/internal/interfaces/http"
	"github.com/jhoicas/Careplus-api/pkg/config"
	"github.com/jhoicas/Careplus-api/pkg/logger"
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

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, cfg.DB, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones de base de datos")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	receptionistRepo := postgres.NewReceptionistRepository(pool)
	receptionistUC := usecase.NewReceptionistUseCase(receptionistRepo)

	// PDF: listado imprimible de recepcionistas
	rosterPDF := infrapdf.NewMarotoRosterGenerator("CarePlus")
	rosterUC := usecase.NewRosterUseCase(receptionistRepo, rosterPDF)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + httpRouter.RequestIDHeader,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    "CarePlus API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReceptionistUC: receptionistUC,
		RosterUC:       rosterUC,
		DB:             pool,
		AppName:        cfg.App.Name,
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
