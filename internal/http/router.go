// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, authentication, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/codelamp/go-forum-backend/docs"
	"github.com/codelamp/go-forum-backend/internal/auth"
	"github.com/codelamp/go-forum-backend/internal/cache"
	"github.com/codelamp/go-forum-backend/internal/config"
	"github.com/codelamp/go-forum-backend/internal/domain"
	"github.com/codelamp/go-forum-backend/internal/events"
	"github.com/codelamp/go-forum-backend/internal/http/handlers"
	"github.com/codelamp/go-forum-backend/internal/http/middleware"
	"github.com/codelamp/go-forum-backend/internal/repo"
	"github.com/codelamp/go-forum-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), authentication,
// idempotency and rate limiting, CORS and security headers, health and
// metrics endpoints, and then mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Structured request logging
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Authentication (resolves the bearer token; never rejects by itself)
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, bus *events.Bus, stats *cache.StatsCache, tokens *auth.TokenService, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging (explicit field list, no header echo)
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Resolve the bearer token into a user; anonymous requests continue
	r.Use(middleware.Authenticate(tokens, func(ctx context.Context, userID string) (*domain.User, error) {
		return repo.GetUser(ctx, db, userID)
	}))

	// 8) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, userID, questionID, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, questionID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Response compression. The SSE stream and Prometheus scrapes must stay
	// uncompressed.
	r.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`.*/admin/events$`, `^/metrics$`}),
	))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/cache/bus
	userSvc := &services.UserService{
		DB:        db,
		Tokens:    tokens,
		Passwords: auth.NewPasswordService(),
		Bus:       bus,
	}
	questionSvc := &services.QuestionService{
		DB:        db,
		ListLimit: cfg.ListLimit,
		Bus:       bus,
	}
	answerSvc := &services.AnswerService{
		DB:      db,
		IdemTTL: cfg.IdempotencyTTL,
		Bus:     bus,
	}
	messageSvc := &services.MessageService{DB: db, Bus: bus}
	adminSvc := &services.AdminService{
		DB:        db,
		Questions: questionSvc,
		Stats:     stats,
		Bus:       bus,
	}

	h := handlers.New(userSvc, questionSvc, answerSvc, messageSvc, adminSvc, bus)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Accounts
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		// Catalog (anonymous reads allowed)
		api.GET("/questions", h.ListQuestions)
		api.GET("/questions/:id", h.GetQuestion)
		api.GET("/questions/:id/answers", h.ListAnswers)
		api.GET("/search", h.SearchQuestions)

		// Writes and the profile surface require a signed-in member
		authed := api.Group("", middleware.RequireUser())
		{
			authed.POST("/questions", h.CreateQuestion)
			authed.POST("/questions/:id/answers", h.PostAnswer)
			authed.POST("/answers/:id/lamp", h.ToggleLamp)
			authed.POST("/answers/:id/favorite", h.ToggleFavorite)

			authed.GET("/me", h.Profile)
			authed.PATCH("/me", h.UpdateProfile)
			authed.GET("/me/questions", h.MyQuestions)
			authed.GET("/me/answers", h.MyAnswers)
			authed.GET("/me/favorites", h.MyFavorites)

			authed.POST("/messages", h.SendMessage)
		}

		// Moderation console
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/users", h.AdminListUsers)
			admin.GET("/questions", h.AdminListQuestions)
			admin.GET("/answers", h.AdminListAnswers)
			admin.GET("/messages", h.AdminListMessages)

			admin.DELETE("/users/:id", h.AdminDeleteUser)
			admin.DELETE("/questions/:id", h.AdminDeleteQuestion)
			admin.DELETE("/answers/:id", h.AdminDeleteAnswer)

			admin.PUT("/users/:id/role", h.AdminSetUserRole)
			admin.PUT("/questions/:id/status", h.AdminSetQuestionStatus)

			admin.GET("/stats", h.AdminStats)
			admin.GET("/activity", h.AdminActivity)
			admin.GET("/events", h.AdminEvents)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
