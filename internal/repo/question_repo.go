// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules (validation, authorship,
// status transitions) to the services package.
//
// Counter semantics:
//   - View counts are incremented with a single atomic
//     "view_count = view_count + 1" UPDATE, never read-modify-write.
//   - The denormalized answer_count column is only ever touched via
//     IncrementAnswerCount inside the same transaction that inserts or
//     deletes the corresponding Answer row.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// Question sort keys accepted by ListQuestions. Unknown keys fall back to
// SortNewest.
const (
	SortNewest       = "newest"
	SortMostViewed   = "views"
	SortMostAnswered = "answers"
)

// CreateQuestion inserts a new Question row authored by authorID. New
// questions start open with zeroed counters. Tags are stored as given; the
// service layer normalizes them beforehand.
func CreateQuestion(ctx context.Context, db *gorm.DB, authorID, authorName, title, description, code string, tags []string) (*domain.Question, error) {
	q := &domain.Question{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		AuthorName:  authorName,
		Title:       title,
		Description: description,
		Code:        code,
		Tags:        tags,
		Status:      domain.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuestion fetches a single question by ID, or ErrNotFound.
func GetQuestion(ctx context.Context, db *gorm.DB, id string) (*domain.Question, error) {
	var q domain.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuestions returns up to limit questions ordered by the given sort key:
// newest (creation time), views (view_count), or answers (answer_count), each
// descending with created_at as tie-break. Unknown sort keys behave like
// newest.
func ListQuestions(ctx context.Context, db *gorm.DB, sortKey string, limit int) ([]domain.Question, error) {
	order := "created_at desc"
	switch sortKey {
	case SortMostViewed:
		order = "view_count desc, created_at desc"
	case SortMostAnswered:
		order = "answer_count desc, created_at desc"
	}

	var out []domain.Question
	err := db.WithContext(ctx).
		Order(order).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListAllQuestions returns the entire question collection, newest first.
// Used by the naive search scan and the moderation console.
func ListAllQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListQuestionsByAuthor returns all questions written by authorID, newest
// first.
func ListQuestionsByAuthor(ctx context.Context, db *gorm.DB, authorID string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// IncrementViewCount bumps a question's view counter by one using an atomic
// column expression. Every successful detail fetch counts, including repeated
// views by the same user. Returns ErrNotFound when the question is missing.
func IncrementViewCount(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementAnswerCount adjusts the denormalized answer counter by delta using
// an atomic column expression. Callers must run it in the same transaction as
// the answer insert or delete it accounts for. Returns ErrNotFound when the
// question is missing.
func IncrementAnswerCount(ctx context.Context, db *gorm.DB, id string, delta int) error {
	res := db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", id).
		UpdateColumn("answer_count", gorm.Expr("answer_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateQuestionStatus overwrites the status column. Transition legality is
// checked by the service layer. Returns ErrNotFound when no row matched.
func UpdateQuestionStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteQuestion hard-deletes a question row. Answers referencing it are
// removed by the FK cascade. Returns ErrNotFound when no row matched.
func DeleteQuestion(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
