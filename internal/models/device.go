package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Device is a physical item belonging to a client, subject of repair jobs.
// ClientID references the owning client and is required at creation time.
type Device struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientID primitive.ObjectID `bson:"clientID" json:"clientID"`
	Type     string             `bson:"type" json:"type"`
	Brand    string             `bson:"brand" json:"brand"`
	Model    string             `bson:"model" json:"model"`
	Serial   string             `bson:"serial" json:"serial"`
}
