package serviceRepo

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardProjection is the field set returned for a single service lookup.
var CardProjection = bson.M{"title": 1, "price": 1, "service_id": 1, "img": 1}

// ListCriteria narrows and orders a service listing.
type ListCriteria struct {
	// Search is matched case-insensitively as a substring of the title.
	Search string
	// Sort is "asc" for ascending price; anything else sorts descending.
	Sort string
}

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// List returns every service matching the criteria.
	List(ctx context.Context, criteria ListCriteria) ([]models.Service, error)
	// GetByIDWithProjection returns nil, nil when no document matches.
	GetByIDWithProjection(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Service, error)
}
