// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return ErrNotFound
//     (an alias for gorm.ErrRecordNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. Duplicate-email detection is left
//     to the service layer via IsDuplicate.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// IsDuplicate reports whether err is a unique-constraint violation, across
// drivers that may not map it to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

// ProfileUpdate names exactly the profile fields a user may change about
// themselves. Nil pointers leave the stored value untouched; partial-document
// spread merges are deliberately not supported.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
}

// CreateUser inserts a new User row. The caller supplies the ID (the service
// derives the avatar seed from it) and the already-hashed password. CreatedAt
// is set to UTC.
func CreateUser(ctx context.Context, db *gorm.DB, id, email, passwordHash, displayName, avatarURL string) (*domain.User, error) {
	u := &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		AvatarURL:    avatarURL,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by ID, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email, or ErrNotFound.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users, newest first.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// UpdateProfile applies a typed partial update to the user's own profile
// fields. If no rows are affected the user does not exist and ErrNotFound is
// returned. When upd carries no changes the call is a no-op.
func UpdateProfile(ctx context.Context, db *gorm.DB, id string, upd ProfileUpdate) error {
	cols := map[string]any{}
	if upd.DisplayName != nil {
		cols["display_name"] = *upd.DisplayName
	}
	if upd.Bio != nil {
		cols["bio"] = *upd.Bio
	}
	if len(cols) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateUserRole overwrites the role column for a user. Role validation is a
// service-layer concern. Returns ErrNotFound when the user does not exist.
func UpdateUserRole(ctx context.Context, db *gorm.DB, id, role string) error {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser hard-deletes a user row. Returns ErrNotFound when no row
// matched. Content authored by the user is intentionally left in place.
func DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
