package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rombit/repair-tracker/internal/models"
)

// DeviceCollection defines the interface for device document operations.
type DeviceCollection interface {
	InsertDevice(ctx context.Context, device models.Device) (primitive.ObjectID, error)
	FindDevices(ctx context.Context) ([]models.Device, error)
	FindDeviceByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error)
	FindDevicesByClient(ctx context.Context, clientID primitive.ObjectID) ([]models.Device, error)
	UpdateDevice(ctx context.Context, id primitive.ObjectID, device models.Device) (int64, error)
	DeleteDevice(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteDevicesByID(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// MongoDeviceCollection implements DeviceCollection for MongoDB.
type MongoDeviceCollection struct {
	Collection *mongo.Collection
}

// InsertDevice inserts a new device and returns its generated identifier.
func (c *MongoDeviceCollection) InsertDevice(ctx context.Context, device models.Device) (primitive.ObjectID, error) {
	res, err := c.Collection.InsertOne(ctx, device)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindDevices returns all devices in insertion order.
func (c *MongoDeviceCollection) FindDevices(ctx context.Context) ([]models.Device, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	devices := []models.Device{}
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// FindDeviceByID finds a device by its ID.
func (c *MongoDeviceCollection) FindDeviceByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	var device models.Device
	if err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&device); err != nil {
		return nil, err
	}
	return &device, nil
}

// FindDevicesByClient returns the devices owned by the given client.
func (c *MongoDeviceCollection) FindDevicesByClient(ctx context.Context, clientID primitive.ObjectID) ([]models.Device, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"clientID": clientID})
	if err != nil {
		return nil, err
	}
	devices := []models.Device{}
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// UpdateDevice sets the mutable device fields and returns the number of
// modified documents. A zero ClientID leaves the owner reference unchanged.
func (c *MongoDeviceCollection) UpdateDevice(ctx context.Context, id primitive.ObjectID, device models.Device) (int64, error) {
	fields := bson.M{
		"type":   device.Type,
		"brand":  device.Brand,
		"model":  device.Model,
		"serial": device.Serial,
	}
	if !device.ClientID.IsZero() {
		fields["clientID"] = device.ClientID
	}
	res, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// DeleteDevice deletes a device by its ID and returns the deleted count.
func (c *MongoDeviceCollection) DeleteDevice(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteDevicesByID bulk-deletes the given devices and returns the count.
func (c *MongoDeviceCollection) DeleteDevicesByID(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := c.Collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
