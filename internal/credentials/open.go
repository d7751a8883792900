package credentials

import (
	"context"

	"writeassess/config"
	"writeassess/db"
	"writeassess/internal/logger"
	"writeassess/services"
)

// Open builds the store selected by cfg.Credentials.Backend. The returned
// close func releases any connection and is never nil.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (services.CredentialStore, func(), error) {
	switch cfg.Credentials.Backend {
	case config.CredentialsMongo:
		client, database, err := db.ConnectMongoDB(ctx, cfg.Database.URI)
		if err != nil {
			return nil, func() {}, err
		}
		log.Info("credential store ready", "backend", "mongo", "database", database.Name(), "collection", cfg.Database.Collection)
		return db.NewCredentialStore(database, cfg.Database.Collection), func() {
			_ = client.Disconnect(context.Background())
		}, nil
	case config.CredentialsRedis:
		client, err := InitRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, func() {}, err
		}
		log.Info("credential store ready", "backend", "redis", "addr", cfg.Redis.Addr)
		return NewRedis(client), func() { _ = client.Close() }, nil
	default:
		log.Info("credential store ready", "backend", "memory")
		return NewMemory(), func() {}, nil
	}
}
