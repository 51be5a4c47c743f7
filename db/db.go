package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB client and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Collections bundles the handles used by the stores. They are built once
// in main and passed down explicitly; nothing reads them through globals.
type Collections struct {
	Users    *mongo.Collection
	Tokens   *mongo.Collection
	Packages *mongo.Collection
	Bookings *mongo.Collection
}

func NewCollections(client *mongo.Client, dbName string) *Collections {
	database := client.Database(dbName)
	return &Collections{
		Users:    database.Collection("users"),
		Tokens:   database.Collection("tokens"),
		Packages: database.Collection("packages"),
		Bookings: database.Collection("bookings"),
	}
}
