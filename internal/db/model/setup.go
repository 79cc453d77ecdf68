package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-amiri/anchor-basset-reward/internal/config"
)

const setupTimeout = 30 * time.Second

var collections = []string{
	ConfigCollection,
	StateCollection,
}

// Setup creates the database collections if they do not exist yet. It is
// idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()
	defer client.Disconnect(ctx) //nolint:errcheck

	database := client.Database(cfg.DbName)
	existing, err := database.ListCollectionNames(ctx, map[string]any{})
	if err != nil {
		return err
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range collections {
		if existingSet[name] {
			continue
		}
		if err := database.CreateCollection(ctx, name); err != nil {
			return err
		}
	}

	return nil
}
