package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rombit/repair-tracker/internal/models"
)

// ClientCollection defines the interface for client document operations.
// Identifier parsing happens at the handler boundary; every by-ID method
// takes an already validated ObjectID.
type ClientCollection interface {
	InsertClient(ctx context.Context, client models.Client) (primitive.ObjectID, error)
	FindClients(ctx context.Context) ([]models.Client, error)
	FindClientByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	UpdateClient(ctx context.Context, id primitive.ObjectID, client models.Client) (int64, error)
	DeleteClient(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoClientCollection implements ClientCollection for MongoDB.
type MongoClientCollection struct {
	Collection *mongo.Collection
}

// InsertClient inserts a new client and returns its generated identifier.
func (c *MongoClientCollection) InsertClient(ctx context.Context, client models.Client) (primitive.ObjectID, error) {
	res, err := c.Collection.InsertOne(ctx, client)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindClients returns all clients in insertion order.
func (c *MongoClientCollection) FindClients(ctx context.Context) ([]models.Client, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// FindClientByID finds a client by its ID.
func (c *MongoClientCollection) FindClientByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	if err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient sets the mutable client fields and returns the number of
// modified documents. An absent ID reports zero modified, not an error.
func (c *MongoClientCollection) UpdateClient(ctx context.Context, id primitive.ObjectID, client models.Client) (int64, error) {
	res, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"firstName":   client.FirstName,
		"lastName":    client.LastName,
		"phoneNumber": client.PhoneNumber,
		"email":       client.Email,
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// DeleteClient deletes a client by its ID and returns the deleted count.
func (c *MongoClientCollection) DeleteClient(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
