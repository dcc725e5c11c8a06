package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bookservice/internal/config"
	"bookservice/internal/platform/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			logger.Error("name is required for 'create' command")
			os.Exit(2)
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logger.Error("create migration", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	dsn := databaseDSN()
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Error("connect to database", "dsn", config.RedactDSN(dsn), "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", "error", err)
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	default:
		logger.Error("unknown command, use: up, down, status, create", "command", *command)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
	logger.Info("migration finished", "command", *command, "dir", dir)
}
