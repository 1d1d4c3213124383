// Package search implements the forum's naive question search: a
// case-insensitive substring scan over title, description and tags. The
// catalog is small enough that a linear pass over an in-memory slice beats
// carrying an index; callers fetch the questions once and filter here.
package search

import (
	"strings"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// Filter returns the questions matching query, preserving input order. The
// match is a lower-cased substring test against the title, the description
// and each tag. A blank query matches nothing.
func Filter(questions []domain.Question, query string) []domain.Question {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Question{}
	}

	out := make([]domain.Question, 0)
	for _, question := range questions {
		if Matches(question, q) {
			out = append(out, question)
		}
	}
	return out
}

// Matches reports whether a single question matches the already-lowered
// query term.
func Matches(q domain.Question, lowered string) bool {
	if strings.Contains(strings.ToLower(q.Title), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Description), lowered) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}
