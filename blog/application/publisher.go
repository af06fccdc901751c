package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pictify-io/blogs/blog/domain"
	"github.com/rs/zerolog/log"
)

// ContentReadPolicy decides what happens to the run when a draft's file cannot be read
type ContentReadPolicy string

const (
	// SkipOnContentError logs the failure and moves on to the next draft
	SkipOnContentError ContentReadPolicy = "skip"
	// AbortOnContentError stops the whole run, leaving later drafts unprocessed
	AbortOnContentError ContentReadPolicy = "abort"
)

// ParseContentReadPolicy validates a policy name
func ParseContentReadPolicy(s string) (ContentReadPolicy, error) {
	switch p := ContentReadPolicy(s); p {
	case SkipOnContentError, AbortOnContentError:
		return p, nil
	}
	return "", fmt.Errorf("unknown content read policy %q", s)
}

// RunSummary counts what happened to the drafts selected by a run
type RunSummary struct {
	Selected  int
	Published int
	Failed    int
	Skipped   int
}

type Publisher struct {
	repo     domain.PostRepository
	manifest domain.ManifestRepository
	source   domain.SourceRepository
	ids      domain.IDGenerator

	policy ContentReadPolicy
	now    func() time.Time
}

type Option func(*Publisher)

// WithContentReadPolicy overrides the default SkipOnContentError policy
func WithContentReadPolicy(policy ContentReadPolicy) Option {
	return func(p *Publisher) {
		p.policy = policy
	}
}

// WithClock overrides the time source used for createdAt
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(
	repo domain.PostRepository,
	manifest domain.ManifestRepository,
	source domain.SourceRepository,
	ids domain.IDGenerator,
	opts ...Option,
) *Publisher {
	p := &Publisher{
		repo:     repo,
		manifest: manifest,
		source:   source,
		ids:      ids,
		policy:   SkipOnContentError,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run publishes every draft in the manifest, one at a time and in manifest order.
// A store write failure leaves the record as a draft and the run continues. A manifest
// persist failure ends the run, since the store and manifest may now disagree.
// The manifest is rewritten after each successful write, so a crash between the two
// can publish the same draft twice on the next run.
func (p *Publisher) Run(ctx context.Context) (*RunSummary, error) {
	records, err := p.manifest.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	drafts := selectDrafts(records)
	summary := &RunSummary{Selected: len(drafts)}
	log.Info().Int("records", len(records)).Int("drafts", len(drafts)).Msg("Loaded manifest")

	for _, record := range drafts {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		err := p.publishRecord(ctx, records, record)
		switch {
		case err == nil:
			summary.Published++
			log.Info().Str("title", record.Title).Str("id", record.ID).Msg("Blog published")
		case errors.Is(err, domain.ErrManifestPersist):
			return summary, err
		case errors.Is(err, domain.ErrContentRead):
			if p.policy == AbortOnContentError {
				return summary, err
			}
			summary.Skipped++
			log.Error().Err(err).Str("title", record.Title).Str("file", record.FileName).Msg("Skipping blog with unreadable content")
		default:
			summary.Failed++
			log.Error().Err(err).Str("title", record.Title).Msg("Error publishing blog")
		}
	}

	return summary, nil
}

// publishRecord writes one draft to the store and, on success, persists the whole manifest
func (p *Publisher) publishRecord(ctx context.Context, records []*domain.PostRecord, record *domain.PostRecord) error {
	content, err := p.source.GetFileContents(ctx, record.FileName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrContentRead, record.FileName, err)
	}

	post := p.buildPost(record, string(content))

	if record.ID != "" {
		err = p.repo.UpdatePost(ctx, post)
	} else {
		err = p.repo.InsertPost(ctx, post)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}

	record.MarkPublished(post.ID)

	if err := p.manifest.Save(ctx, records); err != nil {
		return fmt.Errorf("%w: after publishing %s: %w", domain.ErrManifestPersist, post.ID, err)
	}

	return nil
}

func (p *Publisher) buildPost(record *domain.PostRecord, content string) *domain.Post {
	id := record.ID
	if id == "" {
		id = p.ids.Generate(idLength)
	}

	return &domain.Post{
		ID:          id,
		UID:         p.ids.Generate(uidLength),
		Slug:        Slugify(record.Title),
		Active:      true,
		Title:       record.Title,
		Content:     content,
		Tags:        record.Tags,
		HeroImage:   record.HeroImage,
		Author:      record.Author,
		Type:        record.PostType(),
		IsFeatured:  record.IsFeatured,
		Status:      domain.StatusPublished,
		CreatedAt:   p.now().UTC(),
		ReadingTime: ReadingTime(content),
	}
}

func selectDrafts(records []*domain.PostRecord) []*domain.PostRecord {
	drafts := make([]*domain.PostRecord, 0, len(records))
	for _, r := range records {
		if r.IsDraft() {
			drafts = append(drafts, r)
		}
	}
	return drafts
}
