// Package services – AdminService
//
// Moderation console use-cases. Every method takes the acting user and
// refuses non-admins with ErrForbidden; the HTTP layer never gets to decide
// who is an admin on its own. Deletions publish events so connected admin
// consoles can apply the change as a diff instead of refetching collections.
package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/cache"
	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

// recentPerKind is how many items per collection feed the activity widget.
const recentPerKind = 5

// AdminService implements the moderation console.
type AdminService struct {
	DB *gorm.DB
	// Questions handles the status transition on behalf of the console.
	Questions *QuestionService
	// Stats may be nil; then every dashboard read hits the database.
	Stats *cache.StatsCache
	// Bus receives entity-change events; may be nil in tests.
	Bus *events.Bus
}

// ActivityItem is one row of the dashboard's recent-activity widget.
type ActivityItem struct {
	Kind       events.Kind `json:"kind"`
	ID         string      `json:"id"`
	ActorName  string      `json:"actorName"`
	Title      string      `json:"title,omitempty"`
	OccurredAt int64       `json:"occurredAt"`
}

func requireAdmin(actor *domain.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// ListUsers returns every account, newest first.
func (s *AdminService) ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ListUsers(ctx, s.DB)
}

// ListQuestions returns the entire catalog without the front-page cap.
func (s *AdminService) ListQuestions(ctx context.Context, actor *domain.User) ([]domain.Question, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ListAllQuestions(ctx, s.DB)
}

// ListAnswers returns every answer across all questions, newest first.
func (s *AdminService) ListAnswers(ctx context.Context, actor *domain.User) ([]domain.Answer, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ListAllAnswers(ctx, s.DB)
}

// ListMessages returns all messages sent to the admins, newest first.
func (s *AdminService) ListMessages(ctx context.Context, actor *domain.User) ([]domain.Message, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return repo.ListMessages(ctx, s.DB)
}

// DeleteUser removes an account. Content the user authored stays in place,
// still carrying their id and display name. Admins cannot delete themselves,
// which keeps the console from locking everyone out.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.ID {
		return ErrForbidden
	}
	if err := repo.DeleteUser(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Stats.Invalidate(ctx)
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindUser, Op: events.OpDeleted, ID: id, ActorName: actor.DisplayName})
	}
	return nil
}

// DeleteQuestion removes a question; its answers and their favorites go with
// it via the FK cascades.
func (s *AdminService) DeleteQuestion(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := repo.DeleteQuestion(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	s.Stats.Invalidate(ctx)
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindQuestion, Op: events.OpDeleted, ID: id, ActorName: actor.DisplayName})
	}
	return nil
}

// DeleteAnswer removes a single answer and decrements its question's
// answerCount in the same transaction, so the counter tracks the rows.
func (s *AdminService) DeleteAnswer(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.GetAnswer(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteAnswer(ctx, tx, id); err != nil {
			return err
		}
		return repo.IncrementAnswerCount(ctx, tx, a.QuestionID, -1)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}
	s.Stats.Invalidate(ctx)
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindAnswer, Op: events.OpDeleted, ID: id, ActorName: actor.DisplayName})
	}
	return nil
}

// SetUserRole promotes or demotes an account. The role must be one of the
// known roles; admins cannot change their own role.
func (s *AdminService) SetUserRole(ctx context.Context, actor *domain.User, id, role string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !domain.ValidRole(role) {
		return ErrInvalidRole
	}
	if id == actor.ID {
		return ErrForbidden
	}
	if err := repo.UpdateUserRole(ctx, s.DB, id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindUser, Op: events.OpUpdated, ID: id, ActorName: actor.DisplayName})
	}
	return nil
}

// SetQuestionStatus moves a question through its lifecycle on behalf of the
// console. Transition rules live with the question service.
func (s *AdminService) SetQuestionStatus(ctx context.Context, actor *domain.User, id, status string) (*domain.Question, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.Questions.SetStatus(ctx, id, status)
}

// ForumStats returns the dashboard totals, served from the cache when one is
// configured and fresh.
func (s *AdminService) ForumStats(ctx context.Context, actor *domain.User) (repo.ForumStats, error) {
	if err := requireAdmin(actor); err != nil {
		return repo.ForumStats{}, err
	}
	if cached, ok := s.Stats.Get(ctx); ok {
		return cached, nil
	}
	stats, err := repo.CountStats(ctx, s.DB)
	if err != nil {
		return repo.ForumStats{}, err
	}
	s.Stats.Set(ctx, stats)
	return stats, nil
}

// RecentActivity merges the newest questions and answers (up to five of
// each) into one feed, most recent first.
func (s *AdminService) RecentActivity(ctx context.Context, actor *domain.User) ([]ActivityItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	qs, err := repo.RecentQuestions(ctx, s.DB, recentPerKind)
	if err != nil {
		return nil, err
	}
	as, err := repo.RecentAnswers(ctx, s.DB, recentPerKind)
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(qs)+len(as))
	for _, q := range qs {
		items = append(items, ActivityItem{
			Kind:       events.KindQuestion,
			ID:         q.ID,
			ActorName:  q.AuthorName,
			Title:      q.Title,
			OccurredAt: q.CreatedAt.UnixMilli(),
		})
	}
	for _, a := range as {
		items = append(items, ActivityItem{
			Kind:       events.KindAnswer,
			ID:         a.ID,
			ActorName:  a.AuthorName,
			OccurredAt: a.CreatedAt.UnixMilli(),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OccurredAt != items[j].OccurredAt {
			return items[i].OccurredAt > items[j].OccurredAt
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}
