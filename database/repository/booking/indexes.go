package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const servicesPriceIndex = "servicesPrice"

// EnsureIndexes creates indexes for fields used by the text search.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "services", Value: 1}, {Key: "price", Value: 1}},
		Options: options.Index().SetName(servicesPriceIndex),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create %s index: %w", servicesPriceIndex, err)
	}
	return nil
}
