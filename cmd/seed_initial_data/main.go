package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"padhobadho/cmd/seed_initial_data/internal/seedmodels"
	"padhobadho/internal/config"
	"padhobadho/internal/database"
	"padhobadho/internal/domain"
	"padhobadho/internal/logger"
	"padhobadho/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/initial_questions.json"

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

type seeder struct {
	tx        domain.TransactionManager
	subjects  domain.SubjectRepository
	questions domain.QuestionRepository
	log       *zap.Logger
}

func main() {
	path := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
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
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *path), zap.Error(err))
	}
	var seedSubjects []seedmodels.SeedSubject
	if err := json.Unmarshal(byteValue, &seedSubjects); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("subjects", len(seedSubjects)))

	s := &seeder{
		tx:        repository.NewTransactionManagerAdapter(db),
		subjects:  repository.NewSubjectDatabaseAdapter(db),
		questions: repository.NewQuestionDatabaseAdapter(db),
		log:       log,
	}
	for _, subject := range seedSubjects {
		if err := s.seedSubject(ctx, subject); err != nil {
			log.Error("Error seeding subject, transaction rolled back", zap.String("subject", subject.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

// seedSubject creates the subject if needed and adds questions not already present, in one transaction.
func (s *seeder) seedSubject(ctx context.Context, seed seedmodels.SeedSubject) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		subject, err := s.subjects.GetSubjectByName(ctx, seed.Name)
		if err != nil {
			return fmt.Errorf("error checking subject %s: %w", seed.Name, err)
		}
		if subject == nil {
			subject = &domain.Subject{Name: seed.Name}
			if err := s.subjects.CreateSubject(ctx, subject); err != nil {
				return err
			}
			s.log.Info("Created subject", zap.String("id", subject.ID), zap.String("name", subject.Name))
		}

		created := 0
		for _, sq := range seed.Questions {
			difficulty, ok := domain.ParseDifficulty(sq.Difficulty)
			if !ok {
				return fmt.Errorf("invalid difficulty %q for question '%s'", sq.Difficulty, firstN(sq.Content, 50))
			}
			exists, err := s.questions.ExistsByContent(ctx, subject.ID, sq.Content)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			q := &domain.Question{
				SubjectID:     subject.ID,
				Topic:         sq.Topic,
				Content:       sq.Content,
				Options:       sq.Options,
				CorrectOption: sq.CorrectOption,
				Difficulty:    difficulty,
				Explanation:   sq.Explanation,
				SourceYear:    sq.SourceYear,
			}
			if err := q.Validate(); err != nil {
				return fmt.Errorf("question '%s': %w", firstN(sq.Content, 50), err)
			}
			if err := s.questions.CreateQuestion(ctx, q); err != nil {
				return err
			}
			created++
		}
		s.log.Info("Seeded subject", zap.String("name", subject.Name), zap.Int("questions_created", created))
		return nil
	})
}
