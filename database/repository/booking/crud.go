package bookingRepo

import (
	"context"
	"errors"
	"time"

	"bistrovoice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given bookingId.
var ErrNotFound = errors.New("booking not found")

// Create inserts a new booking record. The bookingId must already be set; the
// unique index rejects duplicates so concurrent inserts need no coordination.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

// GetByBookingID returns a booking by its external identifier.
func (r *mongoBookingRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetAll returns every booking, newest-created first.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel marks a booking cancelled and returns the updated record. The record
// is retained for audit rather than deleted.
func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"bookingId": bookingID}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}
