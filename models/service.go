package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a catalogue entry. Services are created outside of the API.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID   string             `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Img         string             `bson:"img,omitempty" json:"img,omitempty"`
	Price       Amount             `bson:"price,omitempty" json:"price,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Facility    []Facility         `bson:"facility,omitempty" json:"facility,omitempty"`
}

type Facility struct {
	Name    string `bson:"name" json:"name"`
	Details string `bson:"details" json:"details"`
}
