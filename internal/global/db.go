// Package global holds process-wide shared state.
package global

import (
	"context"
	"os"

	"github.com/Laisky/zap"

	"github.com/Laisky/devhub-api/library/db/mongo"
	"github.com/Laisky/devhub-api/library/log"
)

// DB is the long-lived store handle, established at process start
// and released on shutdown.
var DB mongo.DB

// SetupDB connects to the document store configured via the MONGO_URL and
// DB_NAME environment variables. The process refuses to start without them.
func SetupDB(ctx context.Context) {
	mongoURL := os.Getenv("MONGO_URL")
	dbName := os.Getenv("DB_NAME")
	if mongoURL == "" || dbName == "" {
		log.Logger.Panic("MONGO_URL and DB_NAME environment variables are required")
	}

	var err error
	if DB, err = mongo.NewDB(ctx, mongo.DialInfo{
		URI:    mongoURL,
		DBName: dbName,
	}); err != nil {
		log.Logger.Panic("connect to mongodb", zap.Error(err))
	}

	log.Logger.Info("connected mongodb", zap.String("db", dbName))
}

// CloseDB releases the store handle.
func CloseDB(ctx context.Context) {
	if DB == nil {
		return
	}
	if err := DB.Close(ctx); err != nil {
		log.Logger.Error("close mongodb", zap.Error(err))
	}
}
