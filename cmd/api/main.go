package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"conduit/internal/common/pagination"
	"conduit/internal/config"
	pgRepo "conduit/internal/infra/adapter/persistence/postgres"
	"conduit/internal/infra/db"
	"conduit/internal/observability/logging"
	"conduit/internal/observability/tracing"
	"conduit/internal/repository"
	"conduit/internal/resilience/circuitbreaker"
	pkgconfig "conduit/pkg/config"

	artUC "conduit/internal/usecase/article"
	comUC "conduit/internal/usecase/comment"
	profUC "conduit/internal/usecase/profile"
	tagUC "conduit/internal/usecase/tag"
	userUC "conduit/internal/usecase/user"

	hhttp "conduit/internal/handler/http"
	harticle "conduit/internal/handler/http/article"
	hauth "conduit/internal/handler/http/auth"
	hcomment "conduit/internal/handler/http/comment"
	"conduit/internal/handler/http/middleware"
	hprofile "conduit/internal/handler/http/profile"
	"conduit/internal/handler/http/requestid"
	htag "conduit/internal/handler/http/tag"
	huser "conduit/internal/handler/http/user"
	authservice "conduit/internal/service/auth"

	_ "conduit/docs" // swagger docs
)

// @title           Conduit API
// @version         1.0
// @description     記事・コメント・フォロー機能を備えたブログプラットフォームの REST API
// @description     アカウント管理、記事の投稿・お気に入り、コメント、プロフィールのフォロー機能を提供します。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Token {token}" または "Bearer {token}" 形式で指定してください。

func main() {
	logger := initLogger()

	securityCfg := loadSecurityConfig(logger)
	secret := validateJWTSecret(logger, securityCfg)

	shutdownTracing := initTracing(logger)
	defer shutdownTracing()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, securityCfg, secret, version)

	stopGauges := startBusinessGauges(logger, database)
	defer stopGauges()

	runServer(logger, handler, version)
}

// initLogger initializes the structured logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSecurityConfig loads the security policy, falling back to defaults when
// no config file is provided.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	cfg, err := config.LoadSecurityConfigOrDefault(os.Getenv("SECURITY_CONFIG"))
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// validateJWTSecret validates the JWT signing secret at startup.
// This prevents the server from starting with an empty or weak secret.
func validateJWTSecret(logger *slog.Logger, cfg *config.SecurityConfig) []byte {
	secret := os.Getenv(cfg.GetJWTSecretEnv())
	if err := hauth.ValidateSecret(secret); err != nil {
		logger.Error("JWT secret validation failed",
			slog.String("env", cfg.GetJWTSecretEnv()),
			slog.Any("error", err))
		os.Exit(1)
	}
	return []byte(secret)
}

// initTracing wires the OpenTelemetry trace provider and returns its shutdown hook.
func initTracing(logger *slog.Logger) func() {
	shutdown, err := tracing.Init("conduit", getVersion())
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	db.Migrate(database)
	logger.Info("database ready")
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services and routes, and returns the fully
// middleware-wrapped handler. The database circuit breaker created here backs
// the health endpoints.
func setupServer(logger *slog.Logger, database *sql.DB, securityCfg *config.SecurityConfig, secret []byte, version string) http.Handler {
	dcb := circuitbreaker.NewDBCircuitBreaker(database)

	tokens := hauth.NewTokenManager(secret, time.Duration(securityCfg.GetJWTExpiryHours())*time.Hour)
	passwords := authservice.NewPasswordService(authservice.PasswordPolicy{
		MinLength:     securityCfg.GetMinPasswordLength(),
		WeakPasswords: securityCfg.GetWeakPasswords(),
	})

	userRepo := pgRepo.NewUserRepo(database)
	articleRepo := pgRepo.NewArticleRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)
	tagRepo := pgRepo.NewTagRepo(database)

	userSvc := &userUC.Service{Repo: userRepo, Passwords: passwords}
	articleSvc := &artUC.Service{Repo: articleRepo, Users: userRepo}
	commentSvc := &comUC.Service{Repo: commentRepo, Articles: articleRepo, Users: userRepo}
	profileSvc := &profUC.Service{Repo: userRepo}
	tagSvc := &tagUC.Service{Repo: tagRepo}

	mux := setupRoutes(logger, dcb, version, tokens, userSvc, articleSvc, commentSvc, profileSvc, tagSvc)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	logger *slog.Logger,
	dcb *circuitbreaker.DBCircuitBreaker,
	version string,
	tokens *hauth.TokenManager,
	userSvc *userUC.Service,
	articleSvc *artUC.Service,
	commentSvc *comUC.Service,
	profileSvc *profUC.Service,
	tagSvc *tagUC.Service,
) *http.ServeMux {
	// レート制限: ログインエンドポイントは毎秒1リクエスト（バースト5）まで
	loginLimiter := hhttp.NewRateLimiter(rate.Limit(1), 5)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()

	huser.Register(mux, huser.RouteDeps{
		Svc:          userSvc,
		Tokens:       tokens,
		LoginLimiter: loginLimiter.Limit,
	})
	harticle.Register(mux, articleSvc, tokens, paginationCfg, logger)
	hcomment.Register(mux, commentSvc, tokens)
	hprofile.Register(mux, profileSvc, tokens)
	htag.Register(mux, tagSvc)

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("/health", &hhttp.HealthHandler{DB: dcb, Version: version})
	mux.Handle("/ready", &hhttp.ReadinessHandler{DB: dcb})
	mux.Handle("/live", &hhttp.LivenessHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order outermost to innermost: CORS → Request ID → Tracing → Recovery →
// Logging → Body Limit → Metrics. Authentication is applied per route.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	// Apply in reverse order (innermost to outermost).
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// startBusinessGauges schedules a periodic refresh of the entity-count gauges
// exported on /metrics. Returns a stop function for shutdown.
func startBusinessGauges(logger *slog.Logger, database *sql.DB) func() {
	users := pgRepo.NewUserRepo(database)
	articles := pgRepo.NewArticleRepo(database)
	comments := pgRepo.NewCommentRepo(database)
	tags := pgRepo.NewTagRepo(database)

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		refreshBusinessGauges(ctx, logger, users, articles, comments, tags)
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 1m", refresh); err != nil {
		logger.Error("failed to schedule metrics refresh", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// 初回は起動直後に反映する
	go refresh()

	return func() {
		<-c.Stop().Done()
	}
}

func refreshBusinessGauges(
	ctx context.Context,
	logger *slog.Logger,
	users repository.UserRepository,
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
	tags repository.TagRepository,
) {
	if n, err := users.CountUsers(ctx); err != nil {
		logger.Warn("failed to count users", slog.Any("error", err))
	} else {
		hhttp.UpdateUsersTotal(n)
	}
	if n, err := articles.CountArticles(ctx); err != nil {
		logger.Warn("failed to count articles", slog.Any("error", err))
	} else {
		hhttp.UpdateArticlesTotal(n)
	}
	if n, err := comments.CountComments(ctx); err != nil {
		logger.Warn("failed to count comments", slog.Any("error", err))
	} else {
		hhttp.UpdateCommentsTotal(n)
	}
	if n, err := tags.CountTags(ctx); err != nil {
		logger.Warn("failed to count tags", slog.Any("error", err))
	} else {
		hhttp.UpdateTagsTotal(n)
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
