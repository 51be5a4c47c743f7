package auth

import (
	"context"
	"errors"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore holds account records keyed by email.
type UserStore interface {
	GetUser(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) error
}

// TokenStore holds at most one issued token per email.
type TokenStore interface {
	GetToken(ctx context.Context, email string) (*models.Token, error)
	CreateToken(ctx context.Context, token models.Token) error
}

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) CreateUser(ctx context.Context, user models.User) error {
	count, err := s.col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrConflict
	}
	_, err = s.col.InsertOne(ctx, user)
	return err
}

type MongoTokenStore struct {
	col *mongo.Collection
}

func NewMongoTokenStore(col *mongo.Collection) *MongoTokenStore {
	return &MongoTokenStore{col: col}
}

func (s *MongoTokenStore) GetToken(ctx context.Context, email string) (*models.Token, error) {
	var token models.Token
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *MongoTokenStore) CreateToken(ctx context.Context, token models.Token) error {
	_, err := s.col.InsertOne(ctx, token)
	return err
}
