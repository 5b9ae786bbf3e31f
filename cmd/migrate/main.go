// migrate aplica las migraciones SQL embebidas (tabla receptionists) y muestra la versión del esquema.
//
// Uso: go run ./cmd/migrate
// Lee la conexión de las mismas variables que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Careplus-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Careplus-api/pkg/config"
	"github.com/jhoicas/Careplus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := postgres.Migrate(ctx, cfg.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migrar: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Esquema en versión %d (antes %d)\n", res.To, res.From)
}
