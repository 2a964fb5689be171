package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a customer owning one or more devices.
type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Email       string             `bson:"email" json:"email"`
}

// FullName returns the client's display name as used in job listings.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
