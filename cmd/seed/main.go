package main

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"creatorlab/internal/config"
	"creatorlab/internal/logger"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/repository"
)

// Loads the sample corpus into an empty contents collection.
func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	mongoURI := cfg.MongoURI
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
		log.Warn("MONGO_URI not set, using default", "uri", mongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("failed to connect to mongo", "error", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("failed to ensure indexes", "error", err)
	}
	store := repository.NewContentRepo(db)

	existing, err := store.List(ctx)
	if err != nil {
		log.Fatal("failed to list contents", "error", err)
	}
	if len(existing) > 0 && os.Getenv("SEED_FORCE") == "" {
		log.Info("contents collection not empty, skipping seed", "count", len(existing))
		return
	}

	corpus, err := mockdata.Load()
	if err != nil {
		log.Fatal("failed to load sample corpus", "error", err)
	}
	for _, c := range corpus.CloneContents() {
		c := c
		id, err := store.Save(ctx, &c)
		if err != nil {
			log.Fatal("failed to insert content", "title", c.Title, "error", err)
		}
		log.Info("seeded content", "id", id, "title", c.Title, "author", c.Author.Name)
	}
	log.Info("seed complete", "db", cfg.MongoDB, "count", len(corpus.Contents))
}
