package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

// newRepoDB opens a fresh in-memory database migrated with the full schema,
// shared by the repo tests in this package.
func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// The pragma is per-connection; keep the pool at one so every statement
	// sees foreign keys enforced.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateAndGetUser(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, uuid.NewString(), "u@example.com", "hash", "U", "https://a/x.svg")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Role != domain.RoleUser {
		t.Fatalf("unexpected defaults: %+v", u)
	}

	byID, err := GetUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if byID.Email != "u@example.com" {
		t.Fatalf("email = %q", byID.Email)
	}

	byEmail, err := GetUserByEmail(ctx, db, "u@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Fatalf("lookup mismatch")
	}

	if _, err := GetUser(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, uuid.NewString(), "dup@example.com", "h", "A", ""); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	_, err := CreateUser(ctx, db, uuid.NewString(), "dup@example.com", "h", "B", "")
	if err == nil || !IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestIsDuplicate(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("UNIQUE constraint failed: users.email"), true},
		{errors.New("duplicate key value violates unique constraint"), true},
		{gorm.ErrDuplicatedKey, true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := IsDuplicate(tc.err); got != tc.want {
			t.Fatalf("IsDuplicate(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	u, err := CreateUser(ctx, db, uuid.NewString(), "p@example.com", "h", "Old", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	name := "New"
	if err := UpdateProfile(ctx, db, u.ID, ProfileUpdate{DisplayName: &name}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, err := GetUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.DisplayName != "New" || got.Bio != "" {
		t.Fatalf("partial update wrong: %+v", got)
	}

	// No fields set is a no-op, not an error.
	if err := UpdateProfile(ctx, db, u.ID, ProfileUpdate{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}

	if err := UpdateProfile(ctx, db, "missing", ProfileUpdate{DisplayName: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserRoleAndDelete(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	u, err := CreateUser(ctx, db, uuid.NewString(), "r@example.com", "h", "R", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := UpdateUserRole(ctx, db, u.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	got, err := GetUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !got.IsAdmin() {
		t.Fatalf("role not updated: %q", got.Role)
	}

	if err := DeleteUser(ctx, db, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := DeleteUser(ctx, db, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestListUsers_NewestFirst(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	a, _ := CreateUser(ctx, db, uuid.NewString(), "a@example.com", "h", "A", "")
	db.Model(a).UpdateColumn("created_at", a.CreatedAt.Add(-time.Hour))
	if _, err := CreateUser(ctx, db, uuid.NewString(), "b@example.com", "h", "B", ""); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	users, err := ListUsers(ctx, db)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || users[0].Email != "b@example.com" {
		t.Fatalf("unexpected order: %+v", users)
	}
}
