package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoServiceRepo creates a ServiceRepository over the services collection of db.
func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) *MongoServiceRepo {
	return &MongoServiceRepo{
		coll:    db.Collection(database.ServicesCollection),
		timeout: timeout,
	}
}

func (r *MongoServiceRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// listFilter matches the search text anywhere in the title. An empty search
// matches every document.
func listFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"title": bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}}
}

func listSort(sort string) bson.D {
	direction := -1
	if sort == "asc" {
		direction = 1
	}
	return bson.D{{Key: "price", Value: direction}}
}

// List retrieves the services matching criteria, ordered by price.
func (r *MongoServiceRepo) List(ctx context.Context, criteria ListCriteria) ([]models.Service, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(listSort(criteria.Sort))
	cursor, err := r.coll.Find(ctx, listFilter(criteria.Search), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

// GetByIDWithProjection retrieves a service by its ObjectID.
// Pass nil for projection to retrieve the full document.
func (r *MongoServiceRepo) GetByIDWithProjection(ctx context.Context, id primitive.ObjectID, projection bson.M) (*models.Service, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id.Hex(), err)
	}
	return &service, nil
}
