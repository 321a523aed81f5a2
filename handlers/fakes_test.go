package handlers

import (
	"context"
	"sort"
	"strings"

	serviceRepo "cardoctor/database/repository/service"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeServiceRepo mimics the Mongo repository over an in-memory slice.
type fakeServiceRepo struct {
	services       []models.Service
	err            error
	lastProjection bson.M
}

func (f *fakeServiceRepo) List(_ context.Context, criteria serviceRepo.ListCriteria) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Service{}
	for _, s := range f.services {
		if strings.Contains(strings.ToLower(s.Title), strings.ToLower(criteria.Search)) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if criteria.Sort == "asc" {
			return out[i].Price < out[j].Price
		}
		return out[i].Price > out[j].Price
	})
	return out, nil
}

func (f *fakeServiceRepo) GetByIDWithProjection(_ context.Context, id primitive.ObjectID, projection bson.M) (*models.Service, error) {
	f.lastProjection = projection
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.services {
		if s.ID == id {
			return project(s, projection), nil
		}
	}
	return nil, nil
}

// project keeps _id plus the included fields, as an inclusion projection does.
func project(s models.Service, projection bson.M) *models.Service {
	if projection == nil {
		return &s
	}
	out := &models.Service{ID: s.ID}
	for field := range projection {
		switch field {
		case "service_id":
			out.ServiceID = s.ServiceID
		case "title":
			out.Title = s.Title
		case "img":
			out.Img = s.Img
		case "price":
			out.Price = s.Price
		case "description":
			out.Description = s.Description
		case "facility":
			out.Facility = s.Facility
		}
	}
	return out
}

// fakeBookingRepo mimics the Mongo repository over an in-memory slice.
type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) EnsureIndexes(context.Context) error { return f.err }

func (f *fakeBookingRepo) ListByEmail(_ context.Context, email string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if email == "" || b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, *booking)
	return &models.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status *string) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := &models.UpdateResult{Acknowledged: true}
	for i := range f.bookings {
		if f.bookings[i].ID != id {
			continue
		}
		result.MatchedCount = 1
		var next models.Text
		if status != nil {
			next = models.Text(*status)
		}
		if f.bookings[i].Status != next {
			f.bookings[i].Status = next
			result.ModifiedCount = 1
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := &models.DeleteResult{Acknowledged: true}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Search(_ context.Context, text string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	needle := strings.ToLower(text)
	out := []models.Booking{}
	for _, b := range f.bookings {
		if strings.Contains(strings.ToLower(string(b.Services)), needle) || strings.Contains(strings.ToLower(string(b.Price)), needle) {
			out = append(out, b)
		}
	}
	return out, nil
}
