package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/repo"
	"github.com/codelamp/go-forum-backend/internal/services"
)

// ---------- test DB ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:forum_handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		// The FK pragma is per-connection; keep the pool at one.
		sqlDB.SetMaxOpenConns(1)
	}

	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// asUser injects an authenticated identity the way Authenticate() would, so
// handler tests can skip the token round trip.
func asUser(u *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set("userID", u.ID)
			c.Set("authUser", u)
		}
		c.Next()
	}
}

func memberFixture() *domain.User {
	return &domain.User{
		ID:          uuid.NewString(),
		Email:       "member@example.com",
		DisplayName: "Member One",
		Role:        domain.RoleUser,
	}
}

func adminUserFixture() *domain.User {
	return &domain.User{
		ID:          uuid.NewString(),
		Email:       "admin@example.com",
		DisplayName: "Admin One",
		Role:        domain.RoleAdmin,
	}
}

// ---------- flexible service stubs ----------

type stubUserSvc struct {
	signup  func(context.Context, string, string, string) (*services.Credentials, error)
	login   func(context.Context, string, string) (*services.Credentials, error)
	profile func(context.Context, string) (*domain.User, error)
	update  func(context.Context, string, repo.ProfileUpdate) (*domain.User, error)
}

func (s stubUserSvc) Signup(ctx context.Context, email, password, name string) (*services.Credentials, error) {
	if s.signup != nil {
		return s.signup(ctx, email, password, name)
	}
	return &services.Credentials{User: &domain.User{Email: email}, Token: "tok"}, nil
}

func (s stubUserSvc) Login(ctx context.Context, email, password string) (*services.Credentials, error) {
	if s.login != nil {
		return s.login(ctx, email, password)
	}
	return &services.Credentials{User: &domain.User{Email: email}, Token: "tok"}, nil
}

func (s stubUserSvc) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if s.profile != nil {
		return s.profile(ctx, userID)
	}
	return &domain.User{ID: userID}, nil
}

func (s stubUserSvc) UpdateProfile(ctx context.Context, userID string, upd repo.ProfileUpdate) (*domain.User, error) {
	if s.update != nil {
		return s.update(ctx, userID, upd)
	}
	return &domain.User{ID: userID}, nil
}

type stubQuestionSvc struct {
	list         func(context.Context, string) ([]domain.Question, error)
	get          func(context.Context, string) (*domain.Question, error)
	create       func(context.Context, *domain.User, string, string, string, []string) (*domain.Question, error)
	listByAuthor func(context.Context, string) ([]domain.Question, error)
	search       func(context.Context, string) ([]domain.Question, error)
}

func (s stubQuestionSvc) List(ctx context.Context, sortKey string) ([]domain.Question, error) {
	if s.list != nil {
		return s.list(ctx, sortKey)
	}
	return nil, nil
}

func (s stubQuestionSvc) Get(ctx context.Context, id string) (*domain.Question, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Question{ID: id}, nil
}

func (s stubQuestionSvc) Create(ctx context.Context, author *domain.User, title, description, code string, tags []string) (*domain.Question, error) {
	if s.create != nil {
		return s.create(ctx, author, title, description, code, tags)
	}
	return &domain.Question{Title: title}, nil
}

func (s stubQuestionSvc) ListByAuthor(ctx context.Context, authorID string) ([]domain.Question, error) {
	if s.listByAuthor != nil {
		return s.listByAuthor(ctx, authorID)
	}
	return nil, nil
}

func (s stubQuestionSvc) Search(ctx context.Context, query string) ([]domain.Question, error) {
	if s.search != nil {
		return s.search(ctx, query)
	}
	return nil, nil
}

type stubAnswerSvc struct {
	post            func(context.Context, *domain.User, string, string, string, string) (*domain.Answer, bool, error)
	toggleLamp      func(context.Context, string, string) (*domain.Answer, bool, error)
	toggleFavorite  func(context.Context, string, string) (bool, error)
	listForQuestion func(context.Context, string) ([]domain.Answer, error)
	listByAuthor    func(context.Context, string) ([]domain.Answer, error)
	listFavorites   func(context.Context, string) ([]domain.Answer, error)
}

func (s stubAnswerSvc) Post(ctx context.Context, author *domain.User, questionID, content, code, idemKey string) (*domain.Answer, bool, error) {
	if s.post != nil {
		return s.post(ctx, author, questionID, content, code, idemKey)
	}
	return &domain.Answer{QuestionID: questionID, Content: content}, false, nil
}

func (s stubAnswerSvc) ToggleLamp(ctx context.Context, userID, answerID string) (*domain.Answer, bool, error) {
	if s.toggleLamp != nil {
		return s.toggleLamp(ctx, userID, answerID)
	}
	return &domain.Answer{ID: answerID, LampCount: 1, UserLamps: []string{userID}}, true, nil
}

func (s stubAnswerSvc) ToggleFavorite(ctx context.Context, userID, answerID string) (bool, error) {
	if s.toggleFavorite != nil {
		return s.toggleFavorite(ctx, userID, answerID)
	}
	return true, nil
}

func (s stubAnswerSvc) ListForQuestion(ctx context.Context, questionID string) ([]domain.Answer, error) {
	if s.listForQuestion != nil {
		return s.listForQuestion(ctx, questionID)
	}
	return nil, nil
}

func (s stubAnswerSvc) ListByAuthor(ctx context.Context, authorID string) ([]domain.Answer, error) {
	if s.listByAuthor != nil {
		return s.listByAuthor(ctx, authorID)
	}
	return nil, nil
}

func (s stubAnswerSvc) ListFavorites(ctx context.Context, userID string) ([]domain.Answer, error) {
	if s.listFavorites != nil {
		return s.listFavorites(ctx, userID)
	}
	return nil, nil
}

type stubMessageSvc struct {
	send func(context.Context, *domain.User, string) (*domain.Message, error)
}

func (s stubMessageSvc) Send(ctx context.Context, sender *domain.User, content string) (*domain.Message, error) {
	if s.send != nil {
		return s.send(ctx, sender, content)
	}
	return &domain.Message{Content: content}, nil
}

type stubAdminSvc struct {
	err      error // returned by every call when set
	stats    repo.ForumStats
	activity []services.ActivityItem
	deleted  []string
	role     struct{ id, role string }
	status   struct{ id, status string }
}

func (s *stubAdminSvc) ListUsers(context.Context, *domain.User) ([]domain.User, error) {
	return nil, s.err
}

func (s *stubAdminSvc) ListQuestions(context.Context, *domain.User) ([]domain.Question, error) {
	return nil, s.err
}

func (s *stubAdminSvc) ListAnswers(context.Context, *domain.User) ([]domain.Answer, error) {
	return nil, s.err
}

func (s *stubAdminSvc) ListMessages(context.Context, *domain.User) ([]domain.Message, error) {
	return nil, s.err
}

func (s *stubAdminSvc) DeleteUser(_ context.Context, _ *domain.User, id string) error {
	s.deleted = append(s.deleted, "user:"+id)
	return s.err
}

func (s *stubAdminSvc) DeleteQuestion(_ context.Context, _ *domain.User, id string) error {
	s.deleted = append(s.deleted, "question:"+id)
	return s.err
}

func (s *stubAdminSvc) DeleteAnswer(_ context.Context, _ *domain.User, id string) error {
	s.deleted = append(s.deleted, "answer:"+id)
	return s.err
}

func (s *stubAdminSvc) SetUserRole(_ context.Context, _ *domain.User, id, role string) error {
	s.role.id, s.role.role = id, role
	return s.err
}

func (s *stubAdminSvc) SetQuestionStatus(_ context.Context, _ *domain.User, id, status string) (*domain.Question, error) {
	s.status.id, s.status.status = id, status
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Question{ID: id, Status: status}, nil
}

func (s *stubAdminSvc) ForumStats(context.Context, *domain.User) (repo.ForumStats, error) {
	return s.stats, s.err
}

func (s *stubAdminSvc) RecentActivity(context.Context, *domain.User) ([]services.ActivityItem, error) {
	return s.activity, s.err
}
