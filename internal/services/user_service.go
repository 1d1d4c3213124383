// Package services – UserService
//
// This file implements account lifecycle and profile management: signup,
// login, profile reads, and the typed profile update. Passwords are hashed
// with bcrypt and a signed access token is issued on signup/login; the token
// subject is the user ID that every authorId/userId column references.
package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/codelamp/go-forum-backend/internal/auth"
	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/repo"
)

// avatarBase is the avatar generator the original community used; the seed
// makes the image stable per account.
const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// UserService implements the use-cases around accounts and profiles.
type UserService struct {
	// DB is the database handle used for all account operations.
	DB *gorm.DB
	// Tokens signs access tokens on signup and login.
	Tokens *auth.TokenService
	// Passwords hashes and verifies credentials.
	Passwords *auth.PasswordService
	// Bus receives entity-change events; may be nil in tests.
	Bus *events.Bus
}

// Credentials is the result of a successful signup or login.
type Credentials struct {
	User  *domain.User
	Token string
}

// Signup registers a new account and returns the stored profile plus a
// signed access token.
//
// Semantics and validation:
//   - email and password must be non-blank; the email is lower-cased.
//   - A blank displayName falls back to the email local part, title-cased
//     ("jane.doe@…" becomes "Jane Doe").
//   - A duplicate email yields ErrEmailTaken.
//   - New accounts get role "user", a seeded avatar URL, and zeroed
//     achievement counters.
func (s *UserService) Signup(ctx context.Context, email, password, displayName string) (*Credentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentials
	}
	if strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = displayNameFromEmail(email)
	}

	hash, err := s.Passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	// The avatar is seeded by the account ID so it survives email changes,
	// which means the ID has to exist before the row does.
	id := uuid.NewString()
	avatar := avatarBase + url.QueryEscape(id)
	u, err := repo.CreateUser(ctx, s.DB, id, email, hash, displayName, avatar)
	if err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindUser, Op: events.OpCreated, ID: u.ID, ActorName: u.DisplayName})
	}
	return &Credentials{User: u, Token: token}, nil
}

// Login verifies the email/password pair and returns the profile plus a
// fresh access token. Unknown email and wrong password are both reported as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*Credentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.Passwords.Verify(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &Credentials{User: u, Token: token}, nil
}

// Profile returns the stored profile for userID, or ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies a typed update to the caller's own profile. A
// provided display name must not be blank; bio may be cleared. Returns the
// refreshed profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd repo.ProfileUpdate) (*domain.User, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if upd.DisplayName != nil {
		trimmed := strings.TrimSpace(*upd.DisplayName)
		if trimmed == "" {
			return nil, ErrEmptyContent
		}
		upd.DisplayName = &trimmed
	}

	if err := repo.UpdateProfile(ctx, s.DB, userID, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	if s.Bus != nil {
		s.Bus.Publish(events.Event{Kind: events.KindUser, Op: events.OpUpdated, ID: u.ID, ActorName: u.DisplayName})
	}
	return u, nil
}

// displayNameFromEmail derives a readable default name from the email local
// part: separators become spaces and words are title-cased.
func displayNameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ", "+", " ").Replace(local)
	local = strings.Join(strings.Fields(local), " ")
	if local == "" {
		return "Member"
	}
	return cases.Title(language.English).String(local)
}
