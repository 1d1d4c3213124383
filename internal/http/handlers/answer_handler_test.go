package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/http/middleware"
	"github.com/codelamp/go-forum-backend/internal/services"
)

func TestPostAnswer_Created_Replayed_And_IdemKeyForwarded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member := memberFixture()
	questionID := uuid.NewString()

	var gotKey string
	replayed := false
	svc := stubAnswerSvc{
		post: func(_ context.Context, _ *domain.User, qid, content, _, idemKey string) (*domain.Answer, bool, error) {
			gotKey = idemKey
			return &domain.Answer{QuestionID: qid, Content: content}, replayed, nil
		},
	}
	h := New(stubUserSvc{}, stubQuestionSvc{}, svc, stubMessageSvc{}, &stubAdminSvc{}, nil)
	r := gin.New()
	// The validator normally stashes the key; mount it here the way the
	// router does.
	r.POST("/questions/:id/answers",
		asUser(member),
		middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil),
		h.PostAnswer)

	// Fresh post with a key -> 201, key reaches the service
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/"+questionID+"/answers",
		bytes.NewBufferString(`{"content":"close the channel"}`))
	req.Header.Set(middleware.HeaderIdempotencyKey, "retry-1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("post -> %d body=%s", w.Code, w.Body.String())
	}
	if gotKey != "retry-1" {
		t.Fatalf("idem key = %q", gotKey)
	}

	// Replay -> 200
	replayed = true
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/questions/"+questionID+"/answers",
		bytes.NewBufferString(`{"content":"close the channel"}`))
	req.Header.Set(middleware.HeaderIdempotencyKey, "retry-1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("replay -> %d", w.Code)
	}

	// Missing content -> 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/questions/"+questionID+"/answers",
		bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty body -> %d", w.Code)
	}

	// Bad question UUID -> 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/questions/nope/answers",
		bytes.NewBufferString(`{"content":"x"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad uuid -> %d", w.Code)
	}
}

func TestPostAnswer_FullStack_BumpsCounter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newHandlerDB(t)
	member := memberFixture()
	q := &domain.Question{
		ID: uuid.NewString(), AuthorID: member.ID, AuthorName: member.DisplayName,
		Title: "t", Description: "d", Status: domain.StatusOpen,
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}

	svc := &services.AnswerService{DB: db}
	h := New(stubUserSvc{}, stubQuestionSvc{}, svc, stubMessageSvc{}, &stubAdminSvc{}, nil)
	r := gin.New()
	r.POST("/questions/:id/answers", asUser(member), h.PostAnswer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/questions/"+q.ID+"/answers",
		bytes.NewBufferString(`{"content":"use a waitgroup"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("post -> %d body=%s", w.Code, w.Body.String())
	}

	var stored domain.Question
	if err := db.First(&stored, "id = ?", q.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.AnswerCount != 1 {
		t.Fatalf("answer_count = %d, want 1", stored.AnswerCount)
	}
}

func TestToggleLamp_RequiresUser_And_ReturnsCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member := memberFixture()
	svc := stubAnswerSvc{
		toggleLamp: func(_ context.Context, userID, answerID string) (*domain.Answer, bool, error) {
			return &domain.Answer{ID: answerID, LampCount: 4, UserLamps: []string{userID}}, true, nil
		},
	}
	h := New(stubUserSvc{}, stubQuestionSvc{}, svc, stubMessageSvc{}, &stubAdminSvc{}, nil)

	// Anonymous -> 401
	r := gin.New()
	r.POST("/answers/:id/lamp", h.ToggleLamp)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/answers/"+uuid.NewString()+"/lamp", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous -> %d", w.Code)
	}

	// Authenticated -> 200 with state and count
	r = gin.New()
	r.POST("/answers/:id/lamp", asUser(member), h.ToggleLamp)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/answers/"+uuid.NewString()+"/lamp", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("lamp -> %d body=%s", w.Code, w.Body.String())
	}
	var out ToggleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !out.Active || out.LampCount == nil || *out.LampCount != 4 {
		t.Fatalf("unexpected toggle response: %+v", out)
	}
}

func TestToggleFavorite_OmitsLampCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member := memberFixture()
	h := New(stubUserSvc{}, stubQuestionSvc{}, stubAnswerSvc{}, stubMessageSvc{}, &stubAdminSvc{}, nil)
	r := gin.New()
	r.POST("/answers/:id/favorite", asUser(member), h.ToggleFavorite)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/answers/"+uuid.NewString()+"/favorite", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("favorite -> %d", w.Code)
	}
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json: %v", err)
	}
	if raw["active"] != true {
		t.Fatalf("active = %v", raw["active"])
	}
	if _, present := raw["lamp_count"]; present {
		t.Fatalf("lamp_count should be omitted for favorites")
	}
}

func TestListAnswers_MissingQuestion404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := stubAnswerSvc{
		listForQuestion: func(context.Context, string) ([]domain.Answer, error) {
			return nil, services.ErrQuestionNotFound
		},
	}
	h := New(stubUserSvc{}, stubQuestionSvc{}, svc, stubMessageSvc{}, &stubAdminSvc{}, nil)
	r := gin.New()
	r.GET("/questions/:id/answers", h.ListAnswers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/questions/"+uuid.NewString()+"/answers", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing question -> %d", w.Code)
	}
}
