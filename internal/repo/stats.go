// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate/statistics queries behind
// the moderation dashboard. Each function is context-aware and safe to call
// from services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// ForumStats is the headline aggregation shown on the moderation dashboard:
// one total per collection.
type ForumStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalQuestions int64 `json:"total_questions"`
	TotalAnswers   int64 `json:"total_answers"`
	TotalMessages  int64 `json:"total_messages"`
}

// CountStats computes ForumStats with one COUNT per collection. There is no
// caching here; the service layer decides whether and how long to cache.
func CountStats(ctx context.Context, db *gorm.DB) (ForumStats, error) {
	var s ForumStats
	counts := []struct {
		model any
		dst   *int64
	}{
		{&domain.User{}, &s.TotalUsers},
		{&domain.Question{}, &s.TotalQuestions},
		{&domain.Answer{}, &s.TotalAnswers},
		{&domain.Message{}, &s.TotalMessages},
	}
	for _, c := range counts {
		if err := db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return ForumStats{}, err
		}
	}
	return s, nil
}

// RecentQuestions returns the n most recently created questions.
func RecentQuestions(ctx context.Context, db *gorm.DB, n int) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(n).
		Find(&out).Error
	return out, err
}

// RecentAnswers returns the n most recently created answers.
func RecentAnswers(ctx context.Context, db *gorm.DB, n int) ([]domain.Answer, error) {
	var out []domain.Answer
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(n).
		Find(&out).Error
	return out, err
}
