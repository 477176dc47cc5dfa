// Package mongo provides a thin wrapper around the MongoDB client.
package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/devhub-api/library/log"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const dialTimeout = 30 * time.Second

// DB is a long-lived handle to one mongo database.
type DB interface {
	Close(ctx context.Context) error
	GetCol(colName string) *mongoLib.Collection
	CurrentDB() *mongoLib.Database
}

// DialInfo defines the MongoDB connection information.
// URI is a full connection string like `mongodb://localhost:27017`.
type DialInfo struct {
	URI    string
	DBName string
}

type db struct {
	cli      *mongoLib.Client
	dialInfo DialInfo
}

// Injection points for tests.
var (
	connectMongo = func(ctx context.Context, clientOpts *options.ClientOptions) (*mongoLib.Client, error) {
		return mongoLib.Connect(ctx, clientOpts)
	}
	pingMongo = func(ctx context.Context, cli *mongoLib.Client) error {
		return cli.Ping(ctx, readpref.Primary())
	}
	disconnectMongo = func(ctx context.Context, cli *mongoLib.Client) error {
		return cli.Disconnect(ctx)
	}
)

// NewDB dials mongo once and verifies the connection with a ping,
// so a bad address fails at startup instead of on the first query.
// The driver handles pooling and reconnects for the rest of the process life.
func NewDB(ctx context.Context, dialInfo DialInfo) (DB, error) {
	if strings.TrimSpace(dialInfo.URI) == "" {
		return nil, errors.New("empty mongo uri")
	}
	if strings.TrimSpace(dialInfo.DBName) == "" {
		return nil, errors.New("empty mongo db name")
	}

	log.Logger.Info("try to connect to mongodb",
		zap.String("db", dialInfo.DBName),
	)

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(dialInfo.URI).
		SetConnectTimeout(dialTimeout).
		SetServerSelectionTimeout(dialTimeout).
		SetSocketTimeout(dialTimeout).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetMaxPoolSize(100).
		SetMaxConnIdleTime(300 * time.Second)

	cli, err := connectMongo(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect db")
	}

	if err := pingMongo(ctx, cli); err != nil {
		_ = disconnectMongo(context.Background(), cli)
		return nil, errors.Wrap(err, "ping db")
	}

	return &db{cli: cli, dialInfo: dialInfo}, nil
}

// CurrentDB returns the database named in the dial info.
func (d *db) CurrentDB() *mongoLib.Database {
	return d.cli.Database(d.dialInfo.DBName)
}

// GetCol returns a collection handle by name.
func (d *db) GetCol(colName string) *mongoLib.Collection {
	return d.CurrentDB().Collection(colName)
}

// Close disconnects the client. Shutdown time is bounded to avoid hanging on exit.
func (d *db) Close(ctx context.Context) error {
	if d.cli == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	closeCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	err := disconnectMongo(closeCtx, d.cli)
	d.cli = nil
	return err
}
