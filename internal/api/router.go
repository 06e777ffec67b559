package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghive/blog-backend/docs"
	"github.com/bloghive/blog-backend/internal/api/handler"
	"github.com/bloghive/blog-backend/internal/api/middleware"
	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
	"github.com/bloghive/blog-backend/internal/core/service"
	mongodb "github.com/bloghive/blog-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghive/blog-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	activity ports.ActivityDispatcher,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	engagementRepo := mongodb.NewEngagementRepository(db)
	likeCache := redisdb.NewLikeCountCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	postService := service.NewPostService(postRepo, engagementRepo, log)
	engagementService := service.NewEngagementService(postRepo, engagementRepo, likeCache, activity, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	engagementHandler := handler.NewEngagementHandler(engagementService)

	authRequired := middleware.Auth(jwtSecret, log)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- API routes (legacy /api prefix) ---
	g := e.Group("/api")

	g.POST("/users", authHandler.Signup)
	g.POST("/user", authHandler.Login)
	g.GET("/users", authHandler.ListUsers, authRequired, adminOnly)

	g.GET("/blogs", postHandler.List)
	g.POST("/blogs", postHandler.Create, authRequired)
	g.GET("/blogs/:id", postHandler.Get)
	g.PATCH("/blogs/:id", postHandler.Update, authRequired)
	g.DELETE("/blogs/:id", postHandler.Delete, authRequired)

	g.POST("/blogs/:id/like", engagementHandler.AddLike, authRequired)
	g.GET("/blogs/:id/likes", engagementHandler.CountLikes)
	g.GET("/blogs/:id/likeusers", engagementHandler.ListLikeUsers, authRequired)
	g.GET("/blogs/likes/count", engagementHandler.TotalLikes)

	g.POST("/blogs/:id/comments", engagementHandler.AddComment, authRequired)
	g.GET("/blogs/:id/comments", engagementHandler.ListComments)
	g.GET("/blogs/comments/count", engagementHandler.TotalComments)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
