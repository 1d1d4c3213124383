// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model.
//
// The (user_id, answer_id) pair is unique at the schema level, so a
// concurrent double-insert of the same favorite loses cleanly with a
// constraint violation that the service layer treats as "already favorited".
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// GetFavorite fetches the favorite for the exact (userID, answerID) pair, or
// ErrNotFound.
func GetFavorite(ctx context.Context, db *gorm.DB, userID, answerID string) (*domain.Favorite, error) {
	var f domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFavorite inserts a favorite row for the pair. The unique index makes
// duplicates fail; use IsDuplicate to detect that case.
func CreateFavorite(ctx context.Context, db *gorm.DB, userID, answerID string) (*domain.Favorite, error) {
	f := &domain.Favorite{
		ID:       uuid.NewString(),
		UserID:   userID,
		AnswerID: answerID,
		AddedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFavorite removes the favorite for the pair. Returns ErrNotFound when
// no row matched, which the toggle logic interprets as "was not favorited".
func DeleteFavorite(ctx context.Context, db *gorm.DB, userID, answerID string) error {
	res := db.WithContext(ctx).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFavoritesByUser returns the user's favorites, most recently added
// first.
func ListFavoritesByUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&out).Error
	return out, err
}

// IsFavorited reports whether the pair exists without loading the row.
func IsFavorited(ctx context.Context, db *gorm.DB, userID, answerID string) (bool, error) {
	_, err := GetFavorite(ctx, db, userID, answerID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
