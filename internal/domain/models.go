// Package domain defines the persistence models for the forum: users,
// questions, answers, favorites, and messages. These types are mapped with
// GORM and form the core data layer of the application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role gates the moderation surface; everything else is open to
// any authenticated user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Question status values. A question is created "open"; transitions are
// triggered only by an explicit author or admin action.
const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
	StatusClosed   = "closed"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// ValidStatus reports whether status is one of the known question states.
func ValidStatus(status string) bool {
	return status == StatusOpen || status == StatusResolved || status == StatusClosed
}

// CanTransition reports whether a question status change is legal:
// open → resolved | closed, and resolved ↔ closed.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) || from == to {
		return false
	}
	return to != StatusOpen
}

// User is a registered forum member. The ID doubles as the stable subject of
// issued access tokens, so AuthorID/UserID foreign keys across the schema all
// reference it.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), equal to the token subject.
//   - Email: unique login identifier.
//   - PasswordHash: bcrypt hash; never serialized.
//   - DisplayName / AvatarURL / Bio: public profile fields.
//   - Role: "user" or "admin" (enforced by DB constraint).
//   - Solved / Helpful / Contributions: achievement counters.
type User struct {
	ID           string `json:"id"            gorm:"type:char(36);primaryKey"`
	Email        string `json:"email"         gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string `json:"-"             gorm:"type:varchar(255);not null"`
	DisplayName  string `json:"display_name"  gorm:"type:varchar(120);not null"`
	AvatarURL    string `json:"avatar_url"    gorm:"type:varchar(255)"`
	Role         string `json:"role"          gorm:"type:varchar(16);not null;default:'user';check:role IN ('user','admin')"`
	Bio          string `json:"bio"           gorm:"type:text"`

	Solved        int `json:"solved"        gorm:"not null;default:0"`
	Helpful       int `json:"helpful"       gorm:"not null;default:0"`
	Contributions int `json:"contributions" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user may access the moderation surface.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Question is a post asking for help. AnswerCount is a denormalized counter
// kept equal to the number of Answer rows referencing the question; both are
// written in one transaction when an answer is posted. ViewCount increments
// on every successful detail fetch.
//
// Tags are stored as a JSON array of lowercase strings.
type Question struct {
	ID          string   `json:"id"           gorm:"type:char(36);primaryKey"`
	AuthorID    string   `json:"author_id"    gorm:"type:char(36);not null;index:idx_questions_author"`
	AuthorName  string   `json:"author_name"  gorm:"type:varchar(120);not null"`
	Title       string   `json:"title"        gorm:"type:varchar(255);not null"`
	Description string   `json:"description"  gorm:"type:text;not null"`
	Code        string   `json:"code,omitempty" gorm:"type:text"`
	Tags        []string `json:"tags"         gorm:"serializer:json;type:text"`
	Status      string   `json:"status"       gorm:"type:varchar(16);not null;default:'open';check:status IN ('open','resolved','closed')"`
	ViewCount   int64    `json:"view_count"   gorm:"not null;default:0"`
	AnswerCount int64    `json:"answer_count" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_questions_created"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Answer is a solution posted against a question. UserLamps holds the IDs of
// users who currently endorse ("lamp") the answer; LampCount is kept equal to
// len(UserLamps) by recomputing it inside the same row-locked transaction
// that mutates the set.
type Answer struct {
	ID         string   `json:"id"          gorm:"type:char(36);primaryKey"`
	QuestionID string   `json:"question_id" gorm:"type:char(36);not null;index:idx_answers_question"`
	AuthorID   string   `json:"author_id"   gorm:"type:char(36);not null;index:idx_answers_author"`
	AuthorName string   `json:"author_name" gorm:"type:varchar(120);not null"`
	Content    string   `json:"content"     gorm:"type:text;not null"`
	Code       string   `json:"code,omitempty" gorm:"type:text"`
	LampCount  int64    `json:"lamp_count"  gorm:"not null;default:0"`
	UserLamps  []string `json:"user_lamps"  gorm:"serializer:json;type:text"`
	Comments   int64    `json:"comments"    gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Question is the parent post. Answers are cascade-deleted when their
	// question is removed by a moderator.
	Question Question `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Answer.
func (Answer) TableName() string { return "answers" }

// HasLamp reports whether userID currently lamps the answer.
func (a *Answer) HasLamp(userID string) bool {
	for _, id := range a.UserLamps {
		if id == userID {
			return true
		}
	}
	return false
}

// Favorite is a saved reference from a user to an answer, independent of lamp
// state. At most one row exists per (user_id, answer_id) pair; toggling
// deletes and re-inserts rather than accumulating.
type Favorite struct {
	ID       string    `json:"id"        gorm:"type:char(36);primaryKey"`
	UserID   string    `json:"user_id"   gorm:"type:char(36);not null;index;uniqueIndex:ux_favorites_user_answer"`
	AnswerID string    `json:"answer_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_favorites_user_answer"`
	AddedAt  time.Time `json:"added_at"`

	// Answer is the saved answer. Favorites are cascade-deleted when the
	// underlying answer is removed.
	Answer Answer `json:"-" gorm:"foreignKey:AnswerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }

// Message is a note sent to the site admins. It exists so the moderation
// dashboard's totalMessages statistic aggregates a real collection.
type Message struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:char(36);index"`
	Content   string         `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }
