package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/blogforge/backend/internal/auth"
	"github.com/blogforge/backend/internal/config"
	"github.com/blogforge/backend/internal/db"
	"github.com/blogforge/backend/internal/handler"
	"github.com/blogforge/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("invalid AUTH_TOKEN_TTL: %v", err)
	}
	codec, err := auth.NewTokenCodec(cfg.Auth.Secret, tokenTTL)
	if err != nil {
		log.Fatalf("auth setup failed: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx)
	if err != nil {
		log.Fatalf("postgres setup failed: %v", err)
	}
	defer pool.Close()

	store := db.NewPostgres(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	log.Printf("connected to postgres")

	users := service.NewUserService(store, codec)
	posts := service.NewPostService(store)

	userHandler := handler.NewUserHandler(users)
	postHandler := handler.NewPostHandler(posts)

	router := gin.Default()
	router.Use(handler.RequestID())
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.HTTP.AllowedOrigins))
	}

	router.GET("/", handler.Health(pool))

	loginLimiter := handler.LoginRateLimit(newRedisClient(ctx, cfg), rateLimitRequests(cfg), rateLimitWindow(cfg))

	api := router.Group("/api/v1")

	api.POST("/auth/register", loginLimiter, userHandler.Register)
	api.POST("/auth/login", loginLimiter, userHandler.Login)
	api.POST("/auth/logout", userHandler.Logout)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.GET("/users/:id/posts", postHandler.ListByUser)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)

	authed := api.Group("", handler.AuthMiddleware(codec))
	authed.GET("/user", userHandler.Me)
	authed.PUT("/user", userHandler.UpdateMe)
	authed.DELETE("/user", userHandler.DeleteMe)
	authed.GET("/user/posts", postHandler.ListMine)
	authed.POST("/posts", postHandler.Create)
	authed.PUT("/posts/:id", postHandler.Update)
	authed.DELETE("/posts/:id", postHandler.Delete)

	addr := ":" + cfg.HTTP.Port
	log.Printf("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// newRedisClient connects to redis when REDIS_ADDR is set. Failure to connect
// only disables rate limiting, it never blocks startup.
func newRedisClient(ctx context.Context, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("redis unavailable, rate limiting disabled: %v", err)
		return nil
	}
	return rdb
}

func rateLimitRequests(cfg config.Config) int {
	n, err := strconv.Atoi(cfg.RateLimit.Requests)
	if err != nil || n < 0 {
		log.Printf("invalid AUTH_RATE_LIMIT %q, using 10", cfg.RateLimit.Requests)
		return 10
	}
	return n
}

func rateLimitWindow(cfg config.Config) time.Duration {
	d, err := time.ParseDuration(cfg.RateLimit.Window)
	if err != nil || d <= 0 {
		log.Printf("invalid AUTH_RATE_WINDOW %q, using 1m", cfg.RateLimit.Window)
		return time.Minute
	}
	return d
}
