package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/escuderos-dev/duty-planner/backend/internal/config"
	"github.com/escuderos-dev/duty-planner/backend/internal/repository"
	"github.com/escuderos-dev/duty-planner/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Cargar la configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Crear el pool de conexiones
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open solo crea el pool, no abre conexiones; hay que hacer ping explícito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar con la base de datos", "error", err)
		return
	}

	// Crear el repository
	repo := repository.NewRepository(cfg, dbpool)

	// Insertar la plantilla inicial
	seed.SeedInitialRoster(cfg, repo)
}
