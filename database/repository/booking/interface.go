package bookingRepo

import (
	"context"

	"bistrovoice/database"
	"bistrovoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists reservation records. Bookings are looked up by
// their external bookingId, never by the storage-internal key.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
