package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"padhobadho/internal/config"
	"padhobadho/internal/database"
	"padhobadho/internal/logger"

	"go.uber.org/zap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [up|down|version|force N]\n")
	}
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db)
	if err != nil {
		l.Fatal("Failed to load migrations", zap.Error(err))
	}
	defer migrator.Close()

	ctx := context.Background()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			l.Fatal("Migration failed", zap.Int("applied", applied), zap.Error(err))
		}
		l.Info("Migrations completed successfully", zap.Int("applied", applied))
	case "down":
		if err := migrator.Down(ctx); err != nil {
			l.Fatal("Rollback failed", zap.Error(err))
		}
	case "version":
		version, dirty, ok, err := migrator.Version(ctx)
		if err != nil {
			l.Fatal("Failed to read version", zap.Error(err))
		}
		if !ok {
			fmt.Println("no migrations applied")
			return
		}
		fmt.Printf("version %d (dirty=%t)\n", version, dirty)
	case "force":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		version, err := strconv.ParseUint(flag.Arg(1), 10, 64)
		if err != nil {
			l.Fatal("Invalid version", zap.String("version", flag.Arg(1)), zap.Error(err))
		}
		if err := migrator.Force(ctx, uint(version)); err != nil {
			l.Fatal("Force failed", zap.Error(err))
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}
