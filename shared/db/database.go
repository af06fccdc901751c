package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type Database interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	DB() *mongo.Database
}
