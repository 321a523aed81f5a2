package bookingRepo

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// EnsureIndexes creates the services/price index used by Search.
	EnsureIndexes(ctx context.Context) error
	// ListByEmail returns the bookings for email, or every booking when email is empty.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// Create inserts booking as a new document with a generated _id.
	Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
	// UpdateStatus overwrites only the status field. A nil status stores null.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status *string) (*models.UpdateResult, error)
	// Delete removes one booking. Deleting a missing booking reports zero, not an error.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	// Search matches text case-insensitively against services or price.
	Search(ctx context.Context, text string) ([]models.Booking, error)
}
