package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB at the given URI and verifies the connection with a
// ping before returning the client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Store bundles the collection handles backing the API. It owns the client
// connection; Close must be called when the process shuts down.
type Store struct {
	client *mongo.Client

	Clients  ClientCollection
	Devices  DeviceCollection
	Repairs  RepairCollection
	Counters CounterCollection
}

// NewStore wires the typed collections of the named database.
func NewStore(client *mongo.Client, dbName string) *Store {
	database := client.Database(dbName)
	return &Store{
		client:   client,
		Clients:  &MongoClientCollection{Collection: database.Collection("clients")},
		Devices:  &MongoDeviceCollection{Collection: database.Collection("devices")},
		Repairs:  &MongoRepairCollection{Collection: database.Collection("repairs")},
		Counters: &MongoCounterCollection{Collection: database.Collection("counters")},
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
