// Package services – AnswerService
//
// The engagement engine: posting answers, toggling lamps and favorites, and
// the answer listings. The two denormalized counters this file maintains
// (Question.AnswerCount and Answer.LampCount) are only ever written inside
// transactions so they cannot drift from the rows they summarize.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

// defaultIdemTTL is how long a replayed answer POST keeps returning the
// original result.
const defaultIdemTTL = 24 * time.Hour

// AnswerService implements the engagement use-cases around answers.
type AnswerService struct {
	DB *gorm.DB
	// IdemTTL bounds replay of idempotent answer posts; zero means the
	// package default.
	IdemTTL time.Duration
	// Bus receives entity-change events; may be nil in tests.
	Bus *events.Bus
}

// Post stores a new answer to questionID and bumps the question's
// answerCount, atomically. Content must be non-blank; a missing question
// yields ErrQuestionNotFound.
//
// When idemKey is non-empty the post is idempotent: a retry carrying the
// same key within the replay window returns the originally created answer
// with replayed=true instead of inserting a second row.
func (s *AnswerService) Post(ctx context.Context, author *domain.User, questionID, content, code, idemKey string) (*domain.Answer, bool, error) {
	if author == nil {
		return nil, false, ErrUnauthenticated
	}

	tr := otel.Tracer("services/AnswerService")
	ctx, span := tr.Start(ctx, "Post",
		trace.WithAttributes(
			attribute.String("question.id", questionID),
			attribute.String("user.id", author.ID),
		),
	)
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false, ErrEmptyContent
	}

	if idemKey != "" {
		if a, ok, err := s.replay(ctx, author.ID, questionID, idemKey); err != nil {
			return nil, false, err
		} else if ok {
			return a, true, nil
		}
	}

	if _, err := repo.GetQuestion(ctx, s.DB, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrQuestionNotFound
		}
		return nil, false, err
	}

	var created *domain.Answer
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.CreateAnswer(ctx, tx, questionID, author.ID, author.DisplayName, content, strings.TrimSpace(code))
		if err != nil {
			return err
		}
		if err := repo.IncrementAnswerCount(ctx, tx, questionID, 1); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if idemKey != "" {
		ttl := s.IdemTTL
		if ttl <= 0 {
			ttl = defaultIdemTTL
		}
		if _, err := repo.CreateIdempotency(ctx, s.DB, author.ID, questionID, idemKey, created.ID, 201, ttl); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			return nil, false, err
		}
	}

	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindAnswer, Op: events.OpCreated, ID: created.ID, ActorName: created.AuthorName})
	}
	return created, false, nil
}

// replay looks up a previous post with the same idempotency key and, if the
// recorded answer still exists, returns it.
func (s *AnswerService) replay(ctx context.Context, userID, questionID, key string) (*domain.Answer, bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, userID, questionID, key, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	a, err := repo.GetAnswer(ctx, s.DB, rec.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The answer was moderated away after the first post; fall
			// through to a fresh insert.
			return nil, false, nil
		}
		return nil, false, err
	}
	return a, true, nil
}

// ToggleLamp flips userID's lamp on the answer and returns the updated
// answer plus whether the lamp is now on. The read-modify-write runs under a
// row lock inside a transaction, so the lamp count always equals the size of
// the lamp set no matter how many toggles race.
func (s *AnswerService) ToggleLamp(ctx context.Context, userID, answerID string) (*domain.Answer, bool, error) {
	if userID == "" {
		return nil, false, ErrUnauthenticated
	}

	tr := otel.Tracer("services/AnswerService")
	ctx, span := tr.Start(ctx, "ToggleLamp",
		trace.WithAttributes(
			attribute.String("answer.id", answerID),
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	var (
		updated *domain.Answer
		lamped  bool
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.GetAnswerForUpdate(ctx, tx, answerID)
		if err != nil {
			return err
		}

		lamps := a.UserLamps
		if a.HasLamp(userID) {
			next := make([]string, 0, len(lamps))
			for _, id := range lamps {
				if id != userID {
					next = append(next, id)
				}
			}
			lamps = next
			lamped = false
		} else {
			lamps = append(lamps, userID)
			lamped = true
		}

		if err := repo.SaveLamps(ctx, tx, answerID, lamps); err != nil {
			return err
		}
		a.UserLamps = lamps
		a.LampCount = int64(len(lamps))
		updated = a
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrAnswerNotFound
		}
		return nil, false, err
	}

	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindAnswer, Op: events.OpUpdated, ID: updated.ID, ActorName: updated.AuthorName})
	}
	return updated, lamped, nil
}

// ToggleFavorite flips the (user, answer) favorite and reports whether the
// answer is now favorited. The unique index on the pair keeps racing toggles
// from producing duplicate rows.
func (s *AnswerService) ToggleFavorite(ctx context.Context, userID, answerID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}
	if _, err := repo.GetAnswer(ctx, s.DB, answerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAnswerNotFound
		}
		return false, err
	}

	err := repo.DeleteFavorite(ctx, s.DB, userID, answerID)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if _, err := repo.CreateFavorite(ctx, s.DB, userID, answerID); err != nil {
			if repo.IsDuplicate(err) {
				// Lost a race with an identical toggle; the favorite exists.
				return true, nil
			}
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// ListForQuestion returns the answers to one question, best-lamped first with
// a stable tie-break. A missing question yields ErrQuestionNotFound rather
// than an empty list, so callers can distinguish the two.
func (s *AnswerService) ListForQuestion(ctx context.Context, questionID string) ([]domain.Answer, error) {
	if _, err := repo.GetQuestion(ctx, s.DB, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return repo.ListAnswersByQuestion(ctx, s.DB, questionID)
}

// ListByAuthor returns all answers written by one author, newest first.
func (s *AnswerService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Answer, error) {
	if authorID == "" {
		return nil, ErrUnauthenticated
	}
	return repo.ListAnswersByAuthor(ctx, s.DB, authorID)
}

// ListFavorites returns the answers the user has favorited, most recently
// favorited first. Favorites whose answer has been deleted are already gone
// via the FK cascade, so every favorite resolves.
func (s *AnswerService) ListFavorites(ctx context.Context, userID string) ([]domain.Answer, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	favs, err := repo.ListFavoritesByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Answer, 0, len(favs))
	for _, f := range favs {
		a, err := repo.GetAnswer(ctx, s.DB, f.AnswerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}
