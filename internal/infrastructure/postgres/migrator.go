package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/jhoicas/Careplus-api/pkg/config"
	"github.com/jhoicas/Careplus-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// versionTable tabla donde tern guarda la versión aplicada.
const versionTable = "schema_version"

// MigrationResult versiones antes y después de migrar.
type MigrationResult struct {
	From int32
	To   int32
}

// Migrate aplica las migraciones embebidas hasta la última versión usando una conexión dedicada.
func Migrate(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*MigrationResult, error) {
	conn, err := pgx.Connect(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("conectar para migrar: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return nil, fmt.Errorf("cargar migraciones: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("versión actual del esquema: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}

	res := &MigrationResult{From: from, To: int32(len(m.Migrations))}
	if res.From == res.To {
		log.Info().Int32("version", res.To).Msg("esquema de base de datos al día")
	} else {
		log.Info().Int32("from", res.From).Int32("to", res.To).Msg("esquema de base de datos migrado")
	}
	return res, nil
}
