package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCountStats(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := CreateUser(ctx, db, uuid.NewString(), uuid.NewString()+"@example.com", "h", "U", ""); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
	}
	q, err := CreateQuestion(ctx, db, uuid.NewString(), "A", "t", "d", "", nil)
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := CreateAnswer(ctx, db, q.ID, uuid.NewString(), "H", "c", ""); err != nil {
			t.Fatalf("CreateAnswer: %v", err)
		}
	}
	if _, err := CreateMessage(ctx, db, uuid.NewString(), "note"); err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}

	stats, err := CountStats(ctx, db)
	if err != nil {
		t.Fatalf("CountStats: %v", err)
	}
	want := ForumStats{TotalUsers: 2, TotalQuestions: 1, TotalAnswers: 3, TotalMessages: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestRecentQuestionsAndAnswers_LimitAndOrder(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var lastQ, lastA string
	for i := 0; i < 7; i++ {
		q, err := CreateQuestion(ctx, db, uuid.NewString(), "A", "t", "d", "", nil)
		if err != nil {
			t.Fatalf("CreateQuestion: %v", err)
		}
		db.Model(q).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute))
		lastQ = q.ID

		a, err := CreateAnswer(ctx, db, q.ID, uuid.NewString(), "H", "c", "")
		if err != nil {
			t.Fatalf("CreateAnswer: %v", err)
		}
		db.Model(a).UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute))
		lastA = a.ID
	}

	qs, err := RecentQuestions(ctx, db, 5)
	if err != nil {
		t.Fatalf("RecentQuestions: %v", err)
	}
	if len(qs) != 5 || qs[0].ID != lastQ {
		t.Fatalf("recent questions wrong: len=%d first=%q", len(qs), qs[0].ID)
	}

	as, err := RecentAnswers(ctx, db, 5)
	if err != nil {
		t.Fatalf("RecentAnswers: %v", err)
	}
	if len(as) != 5 || as[0].ID != lastA {
		t.Fatalf("recent answers wrong: len=%d first=%q", len(as), as[0].ID)
	}
}
