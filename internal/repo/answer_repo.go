// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Answer
// model.
//
// Ordering: answers for a question are returned by lamp count descending,
// with creation time descending and then ID as tie-breaks, so the order is
// stable across calls.
//
// Locking: GetAnswerForUpdate takes a row lock so that the service layer can
// flip lamp membership and recompute the counter without racing a concurrent
// toggle on the same row.
package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// CreateAnswer inserts a new Answer row against questionID. New answers start
// with no lamps. The caller is responsible for running this inside the same
// transaction as the parent question's answer-count increment.
func CreateAnswer(ctx context.Context, db *gorm.DB, questionID, authorID, authorName, content, code string) (*domain.Answer, error) {
	now := time.Now().UTC()
	a := &domain.Answer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		Code:       code,
		LampCount:  0,
		UserLamps:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// GetAnswer fetches a single answer by ID, or ErrNotFound.
func GetAnswer(ctx context.Context, db *gorm.DB, id string) (*domain.Answer, error) {
	var a domain.Answer
	if err := db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAnswerForUpdate fetches an answer under a row lock (SELECT ... FOR
// UPDATE). Must be called on a transaction handle; concurrent lamp toggles on
// the same answer serialize behind the lock.
func GetAnswerForUpdate(ctx context.Context, tx *gorm.DB, id string) (*domain.Answer, error) {
	var a domain.Answer
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveLamps persists a mutated lamp set and its recomputed counter for the
// answer. Call only while holding the row lock from GetAnswerForUpdate.
//
// The lamp set is marshalled here rather than handed to GORM as a []string:
// map-based Updates skip the model's JSON serializer, so the column must
// receive the encoded document directly.
func SaveLamps(ctx context.Context, tx *gorm.DB, id string, lamps []string) error {
	if lamps == nil {
		lamps = []string{}
	}
	raw, err := json.Marshal(lamps)
	if err != nil {
		return err
	}
	res := tx.WithContext(ctx).
		Model(&domain.Answer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_lamps": string(raw),
			"lamp_count": int64(len(lamps)),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAnswersByQuestion returns all answers to questionID, best-lamped first.
func ListAnswersByQuestion(ctx context.Context, db *gorm.DB, questionID string) ([]domain.Answer, error) {
	var out []domain.Answer
	err := db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("lamp_count desc, created_at desc, id").
		Find(&out).Error
	return out, err
}

// ListAnswersByAuthor returns all answers written by authorID, newest first.
func ListAnswersByAuthor(ctx context.Context, db *gorm.DB, authorID string) ([]domain.Answer, error) {
	var out []domain.Answer
	err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListAllAnswers returns the entire answer collection, newest first. Used by
// the moderation console.
func ListAllAnswers(ctx context.Context, db *gorm.DB) ([]domain.Answer, error) {
	var out []domain.Answer
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountAnswersForQuestion returns the live number of answers referencing
// questionID. Useful for reconciling the denormalized counter in tests and
// maintenance jobs.
func CountAnswersForQuestion(ctx context.Context, db *gorm.DB, questionID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Answer{}).
		Where("question_id = ?", questionID).
		Count(&n).Error
	return n, err
}

// DeleteAnswer hard-deletes an answer row. Favorites referencing it are
// removed by the FK cascade; the parent question's answer_count is the
// caller's responsibility. Returns ErrNotFound when no row matched.
func DeleteAnswer(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Answer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
