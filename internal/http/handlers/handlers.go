// Package handlers provides HTTP handler implementations for the public API.
//
// This file declares the service contracts the handlers consume and the
// Handlers aggregate that the router wires up. Handlers are transport-thin:
// they validate input, call application services, and translate results into
// HTTP responses. Depending on interfaces rather than concrete services keeps
// transport concerns separate from business logic.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/http/middleware"
	"github.com/codelamp/go-forum-backend/internal/repo"
	"github.com/codelamp/go-forum-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// UserService defines account and profile operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type UserService interface {
	// Signup registers a new account and returns it with an access token.
	Signup(ctx context.Context, email, password, displayName string) (*services.Credentials, error)
	// Login verifies credentials and returns the account with a fresh token.
	Login(ctx context.Context, email, password string) (*services.Credentials, error)
	// Profile returns the stored profile for userID.
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// UpdateProfile applies a typed partial update to the caller's profile.
	UpdateProfile(ctx context.Context, userID string, upd repo.ProfileUpdate) (*domain.User, error)
}

// QuestionService defines catalog operations consumed by HTTP handlers.
type QuestionService interface {
	// List returns the front page ordered by sortKey.
	List(ctx context.Context, sortKey string) ([]domain.Question, error)
	// Get returns one question and counts the view.
	Get(ctx context.Context, id string) (*domain.Question, error)
	// Create stores a new question authored by author.
	Create(ctx context.Context, author *domain.User, title, description, code string, tags []string) (*domain.Question, error)
	// ListByAuthor returns all questions by one author.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Question, error)
	// Search runs the naive substring search over the catalog.
	Search(ctx context.Context, query string) ([]domain.Question, error)
}

// AnswerService defines engagement operations consumed by HTTP handlers.
type AnswerService interface {
	// Post stores an answer; with a non-empty idemKey retries replay.
	Post(ctx context.Context, author *domain.User, questionID, content, code, idemKey string) (*domain.Answer, bool, error)
	// ToggleLamp flips the caller's lamp on an answer.
	ToggleLamp(ctx context.Context, userID, answerID string) (*domain.Answer, bool, error)
	// ToggleFavorite flips the caller's favorite on an answer.
	ToggleFavorite(ctx context.Context, userID, answerID string) (bool, error)
	// ListForQuestion returns a question's answers, best-lamped first.
	ListForQuestion(ctx context.Context, questionID string) ([]domain.Answer, error)
	// ListByAuthor returns the caller's answers.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Answer, error)
	// ListFavorites returns the answers the caller has favorited.
	ListFavorites(ctx context.Context, userID string) ([]domain.Answer, error)
}

// MessageService defines the member-to-admin message operation.
type MessageService interface {
	// Send stores an admin-bound message from sender.
	Send(ctx context.Context, sender *domain.User, content string) (*domain.Message, error)
}

// AdminService defines the moderation console consumed by HTTP handlers.
// Every method re-validates that the actor is an admin.
type AdminService interface {
	ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error)
	ListQuestions(ctx context.Context, actor *domain.User) ([]domain.Question, error)
	ListAnswers(ctx context.Context, actor *domain.User) ([]domain.Answer, error)
	ListMessages(ctx context.Context, actor *domain.User) ([]domain.Message, error)
	DeleteUser(ctx context.Context, actor *domain.User, id string) error
	DeleteQuestion(ctx context.Context, actor *domain.User, id string) error
	DeleteAnswer(ctx context.Context, actor *domain.User, id string) error
	SetUserRole(ctx context.Context, actor *domain.User, id, role string) error
	SetQuestionStatus(ctx context.Context, actor *domain.User, id, status string) (*domain.Question, error)
	ForumStats(ctx context.Context, actor *domain.User) (repo.ForumStats, error)
	RecentActivity(ctx context.Context, actor *domain.User) ([]services.ActivityItem, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for accounts, questions, answers,
// messages, and the moderation console. The event bus feeds the admin
// change stream.
type Handlers struct {
	userSvc     UserService
	questionSvc QuestionService
	answerSvc   AnswerService
	messageSvc  MessageService
	adminSvc    AdminService
	bus         *events.Bus
}

// New constructs a Handlers instance bound to the given services.
func New(userSvc UserService, questionSvc QuestionService, answerSvc AnswerService, messageSvc MessageService, adminSvc AdminService, bus *events.Bus) *Handlers {
	return &Handlers{
		userSvc:     userSvc,
		questionSvc: questionSvc,
		answerSvc:   answerSvc,
		messageSvc:  messageSvc,
		adminSvc:    adminSvc,
		bus:         bus,
	}
}

// currentUser returns the authenticated user from the Gin context, or nil
// for anonymous requests. The auth middleware stores it; the services treat
// nil as unauthenticated.
func currentUser(c *gin.Context) *domain.User {
	return middleware.CurrentUser(c)
}
