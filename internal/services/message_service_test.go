package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

func newMessageDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:messagesvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestMessageSend(t *testing.T) {
	svc := &MessageService{DB: newMessageDB(t)}
	ctx := context.Background()
	sender := &domain.User{ID: uuid.NewString(), DisplayName: "Sender"}

	m, err := svc.Send(ctx, sender, "  please look at question q1  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if m.Content != "please look at question q1" || m.UserID != sender.ID {
		t.Fatalf("unexpected message: %+v", m)
	}

	list, err := repo.ListMessages(ctx, svc.DB)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
}

func TestMessageSend_Validation(t *testing.T) {
	svc := &MessageService{DB: newMessageDB(t)}
	ctx := context.Background()
	sender := &domain.User{ID: uuid.NewString(), DisplayName: "Sender"}

	if _, err := svc.Send(ctx, nil, "hi"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("nil sender: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Send(ctx, sender, "   "); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("blank content: expected ErrEmptyContent, got %v", err)
	}
	if _, err := svc.Send(ctx, sender, strings.Repeat("x", maxMessageLen+1)); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("overlong content: expected ErrEmptyContent, got %v", err)
	}
}
