// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model (notes sent to the site admins).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// CreateMessage inserts an admin-bound message from userID.
func CreateMessage(ctx context.Context, db *gorm.DB, userID, content string) (*domain.Message, error) {
	m := &domain.Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns all messages, newest first.
func ListMessages(ctx context.Context, db *gorm.DB) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
