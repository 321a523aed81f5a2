package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo creates a BookingRepository over the booking collection of db.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) *MongoBookingRepo {
	return &MongoBookingRepo{
		coll:    db.Collection(database.BookingCollection),
		timeout: timeout,
	}
}

func (r *MongoBookingRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// ListByEmail retrieves bookings owned by email.
func (r *MongoBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, emailFilter(email))
}

// Search retrieves bookings whose services or price contain text.
func (r *MongoBookingRepo) Search(ctx context.Context, text string) ([]models.Booking, error) {
	return r.find(ctx, searchFilter(text))
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	// The store owns identifiers; a client-supplied _id is discarded.
	booking.ID = primitive.NilObjectID

	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return models.NewInsertResult(result), nil
}

// UpdateStatus sets the status of the booking with the given id.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status *string) (*models.UpdateResult, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, statusUpdate(status))
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id.Hex(), err)
	}
	return models.NewUpdateResult(result), nil
}

// Delete removes the booking with the given id.
func (r *MongoBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id.Hex(), err)
	}
	return models.NewDeleteResult(result), nil
}
