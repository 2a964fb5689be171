package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rombit/repair-tracker/internal/models"
)

// RepairCollection defines the interface for repair-job document operations.
type RepairCollection interface {
	InsertRepair(ctx context.Context, repair models.Repair) (primitive.ObjectID, error)
	FindRepairs(ctx context.Context) ([]models.Repair, error)
	FindRepairByID(ctx context.Context, id primitive.ObjectID) (*models.Repair, error)
	FindRepairsByDevice(ctx context.Context, deviceID primitive.ObjectID, excludeStatus models.Status) ([]models.Repair, error)
	UpdateRepair(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteRepair(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteRepairsByDevice(ctx context.Context, deviceIDs []primitive.ObjectID) (int64, error)
}

// MongoRepairCollection implements RepairCollection for MongoDB.
type MongoRepairCollection struct {
	Collection *mongo.Collection
}

// InsertRepair inserts a new repair job and returns its generated identifier.
func (c *MongoRepairCollection) InsertRepair(ctx context.Context, repair models.Repair) (primitive.ObjectID, error) {
	res, err := c.Collection.InsertOne(ctx, repair)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindRepairs returns all repair jobs in insertion order.
func (c *MongoRepairCollection) FindRepairs(ctx context.Context) ([]models.Repair, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	repairs := []models.Repair{}
	if err := cursor.All(ctx, &repairs); err != nil {
		return nil, err
	}
	return repairs, nil
}

// FindRepairByID finds a repair job by its ID.
func (c *MongoRepairCollection) FindRepairByID(ctx context.Context, id primitive.ObjectID) (*models.Repair, error) {
	var repair models.Repair
	if err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&repair); err != nil {
		return nil, err
	}
	return &repair, nil
}

// FindRepairsByDevice returns the jobs referencing the given device. An
// empty excludeStatus returns every job; otherwise jobs with that status
// are filtered out.
func (c *MongoRepairCollection) FindRepairsByDevice(ctx context.Context, deviceID primitive.ObjectID, excludeStatus models.Status) ([]models.Repair, error) {
	filter := bson.M{"deviceID": deviceID}
	if excludeStatus != "" {
		filter["status"] = bson.M{"$ne": excludeStatus}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	repairs := []models.Repair{}
	if err := cursor.All(ctx, &repairs); err != nil {
		return nil, err
	}
	return repairs, nil
}

// UpdateRepair sets the given fields on a job and returns the matched count.
func (c *MongoRepairCollection) UpdateRepair(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// DeleteRepair deletes a repair job by its ID and returns the deleted count.
func (c *MongoRepairCollection) DeleteRepair(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteRepairsByDevice bulk-deletes every job referencing any of the given
// devices and returns the count.
func (c *MongoRepairCollection) DeleteRepairsByDevice(ctx context.Context, deviceIDs []primitive.ObjectID) (int64, error) {
	if len(deviceIDs) == 0 {
		return 0, nil
	}
	res, err := c.Collection.DeleteMany(ctx, bson.M{"deviceID": bson.M{"$in": deviceIDs}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
