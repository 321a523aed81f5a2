package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a customer's booking of a service. Services holds a free-form
// copy of the service title, not a reference.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerName string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Img          string             `bson:"img,omitempty" json:"img,omitempty"`
	Date         Text               `bson:"date,omitempty" json:"date,omitempty"`
	Services     Text               `bson:"services,omitempty" json:"services,omitempty"`
	ServiceID    Text               `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Price        Amount             `bson:"price,omitempty" json:"price,omitempty"`
	Status       Text               `bson:"status,omitempty" json:"status,omitempty"`
}

// StatusUpdate is the PATCH body. A missing status clears the field.
type StatusUpdate struct {
	Status *string `json:"status"`
}
