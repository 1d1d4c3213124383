package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/codelamp/go-forum-backend/internal/domain"
)

type fakeValidator struct {
	subject string
	err     error
	seen    string
}

func (f *fakeValidator) Validate(token string) (string, error) {
	f.seen = token
	return f.subject, f.err
}

func okLoader(u *domain.User) UserLoader {
	return func(_ context.Context, userID string) (*domain.User, error) {
		if u == nil || u.ID != userID {
			return nil, errors.New("not found")
		}
		return u, nil
	}
}

func TestCurrentUser_And_CurrentUserID_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if CurrentUser(c) != nil {
		t.Fatalf("expected nil user on empty context")
	}
	if CurrentUserID(c) != "" {
		t.Fatalf("expected empty user id on empty context")
	}

	// Wrong types read as absent
	c.Set(ctxKeyUser, "not-a-user")
	c.Set(ctxKeyUserID, 42)
	if CurrentUser(c) != nil || CurrentUserID(c) != "" {
		t.Fatalf("expected wrong-typed values to read as absent")
	}
}

func TestAuthenticate_ValidToken_LoadsUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	u := &domain.User{ID: "u1", DisplayName: "Jane", Role: domain.RoleUser}
	v := &fakeValidator{subject: "u1"}

	r := gin.New()
	r.Use(Authenticate(v, okLoader(u)))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "u1" {
		t.Fatalf("expected authenticated u1, got %d %q", w.Code, w.Body.String())
	}
	if v.seen != "tok-123" {
		t.Fatalf("validator saw %q", v.seen)
	}
}

func TestAuthenticate_ContinuesAnonymously(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		header string
		v      *fakeValidator
		loader UserLoader
	}{
		"no header":     {header: "", v: &fakeValidator{}, loader: okLoader(nil)},
		"not bearer":    {header: "Basic abc", v: &fakeValidator{}, loader: okLoader(nil)},
		"invalid token": {header: "Bearer bad", v: &fakeValidator{err: errors.New("expired")}, loader: okLoader(nil)},
		"deleted user":  {header: "Bearer ok", v: &fakeValidator{subject: "gone"}, loader: okLoader(nil)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.Use(Authenticate(tc.v, tc.loader))
			r.GET("/p", func(c *gin.Context) {
				if CurrentUser(c) != nil {
					t.Fatalf("expected anonymous request")
				}
				c.Status(http.StatusOK)
			})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request should continue, got %d", w.Code)
			}
		})
	}
}

func TestRequireUser_Gate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/anon", RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/authed", func(c *gin.Context) {
		c.Set(ctxKeyUser, &domain.User{ID: "u1"})
		c.Next()
	}, RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous -> %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["code"] != "unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authed", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated -> %d", w.Code)
	}
}

func TestRequireAdmin_Gate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	inject := func(u *domain.User) gin.HandlerFunc {
		return func(c *gin.Context) {
			if u != nil {
				c.Set(ctxKeyUser, u)
				c.Set(ctxKeyUserID, u.ID)
			}
			c.Next()
		}
	}

	r := gin.New()
	r.GET("/anon", inject(nil), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/member", inject(&domain.User{ID: "u1", Role: domain.RoleUser}), RequireAdmin(),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", inject(&domain.User{ID: "a1", Role: domain.RoleAdmin}), RequireAdmin(),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	for path, want := range map[string]int{
		"/anon":   http.StatusUnauthorized,
		"/member": http.StatusForbidden,
		"/admin":  http.StatusOK,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != want {
			t.Fatalf("%s -> %d, want %d", path, w.Code, want)
		}
	}
}
