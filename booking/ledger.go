package booking

import (
	"context"
	"errors"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ledger is the booking record store. Update and delete scope their
// lookups by (customer, hotel_name, check_in_date) so one user's booking
// can never shadow another's for the same hotel and date.
type Ledger interface {
	CreateBooking(ctx context.Context, b models.Booking) error
	BookingsFromDate(ctx context.Context, customer, fromDate string) ([]models.Booking, error)
	GetBooking(ctx context.Context, customer, hotelName, date string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, customer, hotelName, oldDate, newDate string) (bool, error)
	DeleteBooking(ctx context.Context, customer, hotelName, date string) (bool, error)
}

type MongoLedger struct {
	col *mongo.Collection
}

func NewMongoLedger(col *mongo.Collection) *MongoLedger {
	return &MongoLedger{col: col}
}

func (l *MongoLedger) CreateBooking(ctx context.Context, b models.Booking) error {
	_, err := l.col.InsertOne(ctx, b)
	return err
}

// BookingsFromDate returns the customer's bookings with check_in_date >=
// fromDate, ascending. Dates are YYYY-MM-DD strings so the lexicographic
// sort is chronological. Mongo returns equal sort keys in arbitrary
// order, so createdAt is a secondary key to keep equal dates in
// insertion order.
func (l *MongoLedger) BookingsFromDate(ctx context.Context, customer, fromDate string) ([]models.Booking, error) {
	filter := bson.M{
		"customer":      customer,
		"check_in_date": bson.M{"$gte": fromDate},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "check_in_date", Value: 1},
		{Key: "createdAt", Value: 1},
	})

	cur, err := l.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := []models.Booking{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, cur.Err()
}

func (l *MongoLedger) GetBooking(ctx context.Context, customer, hotelName, date string) (*models.Booking, error) {
	var b models.Booking
	err := l.col.FindOne(ctx, bson.M{
		"customer":      customer,
		"hotel_name":    hotelName,
		"check_in_date": date,
	}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBooking moves the matching booking to newDate in place. Returns
// false when no booking matches the triple; nothing is written then.
func (l *MongoLedger) UpdateBooking(ctx context.Context, customer, hotelName, oldDate, newDate string) (bool, error) {
	res, err := l.col.UpdateOne(ctx,
		bson.M{
			"customer":      customer,
			"hotel_name":    hotelName,
			"check_in_date": oldDate,
		},
		bson.M{"$set": bson.M{"check_in_date": newDate}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteBooking removes the matching booking permanently. A second call
// for the same triple reports false.
func (l *MongoLedger) DeleteBooking(ctx context.Context, customer, hotelName, date string) (bool, error) {
	res, err := l.col.DeleteOne(ctx, bson.M{
		"customer":      customer,
		"hotel_name":    hotelName,
		"check_in_date": date,
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
