package mongo

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubDriver replaces the driver entry points and restores them on cleanup.
func stubDriver(t *testing.T, connectCount, disconnectCount *int32) {
	t.Helper()

	oldConnect := connectMongo
	oldPing := pingMongo
	oldDisconnect := disconnectMongo

	connectMongo = func(ctx context.Context, clientOpts *options.ClientOptions) (*mongoLib.Client, error) {
		atomic.AddInt32(connectCount, 1)
		cli, err := mongoLib.NewClient(options.Client().ApplyURI("mongodb://example.com"))
		if err != nil {
			return nil, errors.Wrap(err, "new client")
		}
		return cli, nil
	}
	pingMongo = func(ctx context.Context, cli *mongoLib.Client) error {
		return nil
	}
	disconnectMongo = func(ctx context.Context, cli *mongoLib.Client) error {
		atomic.AddInt32(disconnectCount, 1)
		return nil
	}

	t.Cleanup(func() {
		connectMongo = oldConnect
		pingMongo = oldPing
		disconnectMongo = oldDisconnect
	})
}

// TestNewDBDialsAndCloses verifies that NewDB dials once and Close disconnects.
func TestNewDBDialsAndCloses(t *testing.T) {
	var connectCount, disconnectCount int32
	stubDriver(t, &connectCount, &disconnectCount)

	ctx := context.Background()
	d, err := NewDB(ctx, DialInfo{URI: "mongodb://localhost:27017", DBName: "devhub"})
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&connectCount))
	require.Equal(t, "devhub", d.CurrentDB().Name())
	require.Equal(t, "blogs", d.GetCol("blogs").Name())

	require.NoError(t, d.Close(ctx))
	require.Equal(t, int32(1), atomic.LoadInt32(&disconnectCount))

	// closing twice is a no-op
	require.NoError(t, d.Close(ctx))
	require.Equal(t, int32(1), atomic.LoadInt32(&disconnectCount))
}

// TestNewDBRejectsEmptyDialInfo verifies startup fails fast on missing settings.
func TestNewDBRejectsEmptyDialInfo(t *testing.T) {
	var connectCount, disconnectCount int32
	stubDriver(t, &connectCount, &disconnectCount)

	ctx := context.Background()

	_, err := NewDB(ctx, DialInfo{URI: "", DBName: "devhub"})
	require.Error(t, err)

	_, err = NewDB(ctx, DialInfo{URI: "mongodb://localhost:27017", DBName: " "})
	require.Error(t, err)

	require.Equal(t, int32(0), atomic.LoadInt32(&connectCount))
}

// TestNewDBPingFailure verifies a failed ping surfaces as a dial error.
func TestNewDBPingFailure(t *testing.T) {
	var connectCount, disconnectCount int32
	stubDriver(t, &connectCount, &disconnectCount)

	pingMongo = func(ctx context.Context, cli *mongoLib.Client) error {
		return errors.New("server unreachable")
	}

	_, err := NewDB(context.Background(), DialInfo{URI: "mongodb://localhost:27017", DBName: "devhub"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ping db")
	// the half-open client must be released
	require.Equal(t, int32(1), atomic.LoadInt32(&disconnectCount))
}
