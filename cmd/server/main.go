package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"teamlog/internal/api/handlers/post"
	"teamlog/internal/api/middleware"
	"teamlog/internal/api/routes"
	"teamlog/internal/config"
	"teamlog/internal/core/comments"
	"teamlog/internal/core/notifications"
	postsCore "teamlog/internal/core/posts"
	"teamlog/internal/core/stocks"
	postgresRepo "teamlog/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	log.Println("Connected to team database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: ", err)
	}
	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations completed successfully")

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	// Session identity: resolves the acting user into the request
	// context; anonymous callers fail at the service layer.
	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret)
	r.Use(sessionAuth.Resolve)

	// Repositories
	postRepo := postgresRepo.NewPostRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	stockRepo := postgresRepo.NewStockRepository(db)
	userRepo := postgresRepo.NewUserRepository(db)

	// Notification pipeline: best-effort, decoupled from writes.
	var sink notifications.Sink
	if cfg.WebhookURL != "" {
		sink = notifications.NewSlackWebhook(cfg.WebhookURL)
	} else {
		log.Println("TEAM_WEBHOOK_URL not set, outbound notifications disabled")
	}
	dispatcher := notifications.NewDispatcher(sink, userRepo, cfg.TeamDomain, logger)

	// Services
	postService := postsCore.NewService(postRepo, dispatcher, logger, cfg.PostPageSize, cfg.FeedPageSize)
	commentService := comments.NewService(commentRepo, postRepo, dispatcher, logger)
	stockService := stocks.NewService(stockRepo, logger)

	// One handler per kind over the same service stack
	postHandler := post.NewHandler(postService, commentService, stockService, postsCore.KindPost)
	nippoHandler := post.NewHandler(postService, commentService, stockService, postsCore.KindNippo)

	routes.RegisterPostRoutes(r, "/post", postHandler)
	routes.RegisterPostRoutes(r, "/nippo", nippoHandler)
	routes.RegisterListingRoutes(r, postHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("teamlog starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
