package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photoshare/internal/domain/apperror"
	"photoshare/pkg/logger"
)

const (
	PostCollection = "posts"
	UserCollection = "users"
)

// Database owns the single process-wide mongo session. The driver pools
// connections internally, so one Database is shared by all requests.
type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client

	connected atomic.Bool
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongo", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: mongo connect: %w", apperror.ErrConnection, err)
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("%w: mongo ping: %w", apperror.ErrConnection, err)
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}
	db.connected.Store(true)

	if err := initCollections(db); err != nil {
		_ = db.Stop()

		return nil, fmt.Errorf("%w: init collections: %w", apperror.ErrConnection, err)
	}

	return db, nil
}

// Handle returns the shared database handle, or ErrNotConnected before Connect
// succeeded and after Stop.
func (db *Database) Handle() (*mongo.Database, error) {
	if db == nil || db.Client == nil || !db.connected.Load() {
		return nil, apperror.ErrNotConnected
	}

	return db.Client.Database(db.DBName), nil
}

func (db *Database) collection(name string) (*mongo.Collection, error) {
	handle, err := db.Handle()
	if err != nil {
		return nil, err
	}

	return handle.Collection(name), nil
}

func initCollections(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	handle, err := db.Handle()
	if err != nil {
		return err
	}

	if err := ensureCollection(ctx, handle, PostCollection, postSchema()); err != nil {
		return err
	}

	if err := ensureCollection(ctx, handle, UserCollection, userSchema()); err != nil {
		return err
	}

	_, err = handle.Collection(PostCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "searchTerm", Value: 1}}},
		{Keys: bson.D{{Key: "blobKey", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	// username uniqueness lives here, not in a check-then-insert.
	_, err = handle.Collection(UserCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		},
		{Keys: bson.D{{Key: "profileBlobKey", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return err
}

func ensureCollection(ctx context.Context, handle *mongo.Database, name string, schema bson.M) error {
	collections, err := handle.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	return handle.CreateCollection(ctx, name, options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": schema,
	}))
}

func postSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"_id", "searchTerm", "blobKey", "createdAt"},
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "string", "minLength": 1},
			"caption":    bson.M{"bsonType": "string"},
			"searchTerm": bson.M{"bsonType": "string"},
			"blobKey":    bson.M{"bsonType": "string", "minLength": 1},
			"postedBy":   bson.M{"bsonType": "string"},
			"createdAt":  bson.M{"bsonType": "date"},
		},
	}
}

func userSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"_id", "username", "profileBlobKey", "createdAt"},
		"properties": bson.M{
			"_id":            bson.M{"bsonType": "string", "minLength": 1},
			"firstName":      bson.M{"bsonType": "string"},
			"lastName":       bson.M{"bsonType": "string"},
			"username":       bson.M{"bsonType": "string", "minLength": 1},
			"profileBlobKey": bson.M{"bsonType": "string", "minLength": 1},
			"createdAt":      bson.M{"bsonType": "date"},
		},
	}
}

func (db *Database) Stop() error {
	if !db.connected.CompareAndSwap(true, false) {
		return nil
	}

	return db.Client.Disconnect(context.Background())
}
