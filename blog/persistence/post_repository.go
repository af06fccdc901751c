package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/pictify-io/blogs/blog/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ domain.PostRepository = (*MongoPostRepository)(nil)

// MongoPostRepository implements domain.PostRepository using a MongoDB collection
type MongoPostRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates a new MongoPostRepository over the given collection
func NewPostRepository(coll *mongo.Collection) *MongoPostRepository {
	return &MongoPostRepository{
		coll: coll,
	}
}

// InsertPost inserts a new document keyed by the post ID
func (r *MongoPostRepository) InsertPost(ctx context.Context, p *domain.Post) error {
	if err := validatePost(p); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(p))
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to insert post %s: %w", p.ID, domain.ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("failed to insert post %s: %w", p.ID, err)
	}

	return nil
}

// UpdatePost sets every field of the document keyed by the post ID.
// The document is created if it has gone missing, so a published record always has one.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, p *domain.Post) error {
	if err := validatePost(p); err != nil {
		return err
	}

	// _id is immutable, so it is left out of the $set
	set := fromDomain(p)
	set.ID = ""

	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: p.ID}},
		bson.D{{Key: "$set", Value: set}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to update post %s: %w", p.ID, err)
	}

	return nil
}

func validatePost(p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}
	if p.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}
	return nil
}

// postDocument is the stored shape of a post in the blogs collection
type postDocument struct {
	ID          string    `bson:"_id,omitempty"`
	UID         string    `bson:"uid"`
	Slug        string    `bson:"slug"`
	Active      bool      `bson:"active"`
	Title       string    `bson:"title"`
	Content     string    `bson:"content"`
	Status      string    `bson:"status"`
	Tags        []string  `bson:"tags"`
	HeroImage   string    `bson:"heroImage"`
	Author      string    `bson:"author"`
	Type        string    `bson:"type"`
	IsFeatured  bool      `bson:"isFeatured"`
	CreatedAt   time.Time `bson:"createdAt"`
	ReadingTime int       `bson:"readingTime"`
}

func fromDomain(p *domain.Post) *postDocument {
	return &postDocument{
		ID:          p.ID,
		UID:         p.UID,
		Slug:        p.Slug,
		Active:      p.Active,
		Title:       p.Title,
		Content:     p.Content,
		Status:      string(p.Status),
		Tags:        p.Tags,
		HeroImage:   p.HeroImage,
		Author:      p.Author,
		Type:        p.Type,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		ReadingTime: p.ReadingTime,
	}
}
