package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rombit/repair-tracker/internal/models"
)

func TestMongoClientCollection_InsertAndFind(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("clients")
	collection.Drop(context.Background())

	clients := &MongoClientCollection{Collection: collection}

	id, err := clients.InsertClient(context.Background(), models.Client{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "555-0100",
		Email:       "ada@example.com",
	})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	found, err := clients.FindClientByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
	assert.Equal(t, "ada@example.com", found.Email)

	all, err := clients.FindClients(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMongoClientCollection_Update(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("clients")
	collection.Drop(context.Background())

	clients := &MongoClientCollection{Collection: collection}

	id, err := clients.InsertClient(context.Background(), models.Client{FirstName: "Ada"})
	require.NoError(t, err)

	modified, err := clients.UpdateClient(context.Background(), id, models.Client{
		FirstName: "Augusta",
		LastName:  "King",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	found, err := clients.FindClientByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Augusta", found.FirstName)
	assert.Equal(t, "King", found.LastName)
}

func TestMongoClientCollection_Delete(t *testing.T) {
	database := testDatabase(t)
	collection := database.Collection("clients")
	collection.Drop(context.Background())

	clients := &MongoClientCollection{Collection: collection}

	id, err := clients.InsertClient(context.Background(), models.Client{FirstName: "Ada"})
	require.NoError(t, err)

	deleted, err := clients.DeleteClient(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Second delete finds nothing.
	deleted, err = clients.DeleteClient(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	_, err = clients.FindClientByID(context.Background(), id)
	assert.Error(t, err)
}
