package store

import (
	"context"
	"fmt"

	"github.com/tarun-1313/PrepInterview/internal/config"
)

// Open builds the document store selected by STORE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "firestore":
		return NewFirestore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	case "postgres":
		return NewPostgres(cfg.GetDatabaseDSN(), cfg.Server.Env == "development")
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}
