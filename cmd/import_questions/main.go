package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"padhobadho/internal/config"
	"padhobadho/internal/database"
	"padhobadho/internal/domain"
	"padhobadho/internal/logger"
	"padhobadho/internal/repository"
	"padhobadho/internal/service"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "path to the question CSV")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall import deadline")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import_questions -file questions.csv")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	f, err := os.Open(*file)
	if err != nil {
		l.Fatal("Failed to open CSV", zap.String("file", *file), zap.Error(err))
	}
	defer f.Close()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	importer := service.NewQuestionImporter(
		repository.NewTransactionManagerAdapter(db),
		repository.NewSubjectDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		l,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	l.Info("Import starting", zap.String("file", *file))
	report, err := importer.Import(ctx, f)
	if report != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	}

	var domainErr *domain.DomainError
	switch {
	case err == nil:
		l.Info("Import finished", zap.Int("imported", report.Imported), zap.Int("duplicates", report.Duplicates))
	case errors.As(err, &domainErr) && domainErr.Code == domain.CodePartialBatchFailure:
		l.Warn("Import finished with failed rows", zap.Int("failed", report.Failed), zap.Int("total", report.Total))
		os.Exit(1)
	default:
		l.Error("Import aborted", zap.Error(err))
		os.Exit(1)
	}
}
