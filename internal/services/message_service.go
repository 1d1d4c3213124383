// Package services – MessageService
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

// maxMessageLen caps admin-bound messages.
const maxMessageLen = 4000

// MessageService lets members send short notes to the site admins. The
// admin-side listing lives on AdminService.
type MessageService struct {
	DB *gorm.DB
	// Bus receives entity-change events; may be nil in tests.
	Bus *events.Bus
}

// Send stores a message from the authenticated user to the admins. Content
// must be non-blank and within the length cap.
func (s *MessageService) Send(ctx context.Context, sender *domain.User, content string) (*domain.Message, error) {
	if sender == nil {
		return nil, ErrUnauthenticated
	}
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxMessageLen {
		return nil, ErrEmptyContent
	}

	m, err := repo.CreateMessage(ctx, s.DB, sender.ID, content)
	if err != nil {
		return nil, err
	}
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindMessage, Op: events.OpCreated, ID: m.ID, ActorName: sender.DisplayName})
	}
	return m, nil
}
