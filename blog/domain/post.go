package domain

import (
	"context"
	"time"
)

const (
	// DefaultPostType is used when a manifest record does not name a type
	DefaultPostType = "article"
)

// Post represents a published blog document.
// A post is built from a draft manifest record and the contents of its file.
// ID is stable across republishes of the same record; UID is regenerated on every write.
type Post struct {
	ID          string
	UID         string
	Slug        string
	Active      bool
	Title       string
	Content     string
	Tags        []string
	HeroImage   string
	Author      string
	Type        string
	IsFeatured  bool
	Status      Status
	CreatedAt   time.Time
	ReadingTime int
}

type PostRepository interface {
	// InsertPost creates a new document keyed by p.ID
	InsertPost(ctx context.Context, p *Post) error

	// UpdatePost replaces the fields of the document keyed by p.ID
	UpdatePost(ctx context.Context, p *Post) error
}

// IDGenerator produces random identifiers of a given length.
type IDGenerator interface {
	Generate(length int) string
}
