// Command seed validates the question bank fixture and loads it into MongoDB.
// It exits non-zero without touching the database when the fixture is malformed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacademy/internal/config"
	"pharmacademy/internal/model"
	"pharmacademy/internal/questionbank"
	"pharmacademy/internal/repository"
)

func main() {
	file := flag.String("file", "data/pharmacy_quiz_data.json", "question bank fixture")
	dryRun := flag.Bool("dry-run", false, "validate the fixture without writing to MongoDB")
	flag.Parse()

	cfg := config.Load()
	config.InitLogger(cfg.LogLevel, cfg.IsProduction())
	log := config.Log

	bank, err := questionbank.LoadFile(*file)
	if err != nil {
		log.WithError(err).Error("fixture rejected")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"file":       *file,
		"categories": len(bank.Categories()),
		"questions":  bank.Size(),
	}).Info("fixture valid")
	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Error("failed to connect to MongoDB")
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	repository.EnsureIndexes(ctx, db)
	repo := repository.NewBankRepo(db)

	if err := seed(ctx, repo, bank, log); err != nil {
		log.WithError(err).Error("seed failed")
		client.Disconnect(context.Background())
		os.Exit(1)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to count stored questions")
		return
	}
	log.WithField("stored", total).Info("question bank seeded")
}

// seed replaces every bucket in bank, then drops stored buckets the
// fixture no longer has, so the store mirrors the validated file
func seed(ctx context.Context, repo repository.BankRepo, bank *questionbank.Bank, log logrus.FieldLogger) error {
	var (
		keep []repository.BankBucket
		err  error
	)
	bank.Each(func(category, key string, questions []model.Question) {
		if err != nil {
			return
		}
		if err = repo.ReplaceBucket(ctx, category, key, questions); err != nil {
			err = fmt.Errorf("replace %s/%s: %w", category, key, err)
			return
		}
		keep = append(keep, repository.BankBucket{Category: category, Difficulty: key})
		log.WithFields(logrus.Fields{"category": category, "difficulty": key, "count": len(questions)}).Info("seeded")
	})
	if err != nil {
		return err
	}

	removed, err := repo.PruneExcept(ctx, keep)
	if err != nil {
		return fmt.Errorf("prune stale buckets: %w", err)
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("dropped questions no longer in the fixture")
	}
	return nil
}
