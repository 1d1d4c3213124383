// Package services – QuestionService
//
// Catalog use-cases: listing the front page, reading a question (which bumps
// its view counter), creating questions, per-author listings, naive search,
// and the moderation status transition.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/repo"
	"github.com/codelamp/go-forum-backend/internal/search"
)

// maxTags caps the number of tags stored per question; extras are dropped.
const maxTags = 5

// defaultListLimit is the front-page size used when the service is built
// without an explicit limit.
const defaultListLimit = 20

// QuestionService implements the question catalog use-cases.
type QuestionService struct {
	DB *gorm.DB
	// ListLimit is the front-page page size; zero falls back to
	// defaultListLimit.
	ListLimit int
	// Bus receives entity-change events; may be nil in tests.
	Bus *events.Bus
}

// List returns the front page ordered by sortKey ("newest", "views" or
// "answers"); an unknown key falls back to newest. The result is capped at
// the configured list limit.
func (s *QuestionService) List(ctx context.Context, sortKey string) ([]domain.Question, error) {
	limit := s.ListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return repo.ListQuestions(ctx, s.DB, sortKey, limit)
}

// Get returns one question and records the view: every successful read bumps
// viewCount by one, refreshes included. The returned question carries the
// already-incremented counter.
func (s *QuestionService) Get(ctx context.Context, id string) (*domain.Question, error) {
	q, err := repo.GetQuestion(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if err := repo.IncrementViewCount(ctx, s.DB, id); err != nil {
		return nil, err
	}
	q.ViewCount++
	return q, nil
}

// Create validates and stores a new question authored by the given user.
// Title and description must be non-blank; tags are trimmed, lower-cased,
// de-duplicated and capped. New questions start open with zero counters.
func (s *QuestionService) Create(ctx context.Context, author *domain.User, title, description, code string, tags []string) (*domain.Question, error) {
	if author == nil {
		return nil, ErrUnauthenticated
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	q, err := repo.CreateQuestion(ctx, s.DB, author.ID, author.DisplayName, title, description, strings.TrimSpace(code), normalizeTags(tags))
	if err != nil {
		return nil, err
	}
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindQuestion, Op: events.OpCreated, ID: q.ID, ActorName: q.AuthorName, Title: q.Title})
	}
	return q, nil
}

// ListByAuthor returns all questions by one author, newest first.
func (s *QuestionService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Question, error) {
	if authorID == "" {
		return nil, ErrUnauthenticated
	}
	return repo.ListQuestionsByAuthor(ctx, s.DB, authorID)
}

// Search runs the naive substring search over the whole catalog. A blank
// query matches nothing.
func (s *QuestionService) Search(ctx context.Context, query string) ([]domain.Question, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Question{}, nil
	}
	all, err := repo.ListAllQuestions(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return search.Filter(all, query), nil
}

// SetStatus moves a question through the open -> resolved/closed lifecycle.
// Reopening is not allowed; an illegal transition yields ErrInvalidStatus.
func (s *QuestionService) SetStatus(ctx context.Context, id, status string) (*domain.Question, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	q, err := repo.GetQuestion(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if !domain.CanTransition(q.Status, status) {
		return nil, ErrInvalidStatus
	}
	if err := repo.UpdateQuestionStatus(ctx, s.DB, id, status); err != nil {
		return nil, err
	}
	q.Status = status
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindQuestion, Op: events.OpUpdated, ID: q.ID, ActorName: q.AuthorName, Title: q.Title})
	}
	return q, nil
}

// normalizeTags trims, lower-cases, de-duplicates and caps the tag list.
// Order of first occurrence is preserved.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}
