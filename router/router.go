package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	authAPI "quillpost-api/api/v1/auth"
	blogAPI "quillpost-api/api/v1/blog"
	csrfAPI "quillpost-api/api/v1/csrf"
	internalAuth "quillpost-api/internal/auth"
	"quillpost-api/internal/firebase"
	"quillpost-api/internal/generate"
	jwt "quillpost-api/internal/jwt"
	log "quillpost-api/internal/logger"
	"quillpost-api/internal/middleware"
	internalUser "quillpost-api/internal/user"
	"quillpost-api/pkg/config"
	"quillpost-api/pkg/db"
	"quillpost-api/pkg/redis"
	"quillpost-api/pkg/status"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

const csrfMaxAge = time.Hour

// Dependencies are the long-lived resources the router wires into services.
// DB is required. Redis may be nil, which turns off failed-login throttling.
type Dependencies struct {
	Config *config.AppConfig
	DB     *gorm.DB
	Redis  redis.RedisClient
	Logger *logrus.Logger
}

// services groups everything the route setup functions need
type services struct {
	jwtService      *jwt.JWTService
	authService     *internalAuth.Service
	generateService *generate.Service
	logger          *log.Logger
}

// NewLogger creates the JSON logger and attaches the Sentry hook when a DSN is configured
func NewLogger(cfg *config.AppConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if cfg.SentryDSN == "" {
		return logger, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     cfg.AppVersion,
	})
	if err != nil {
		return nil, errors.New("failed to initialize Sentry: " + err.Error())
	}

	// Add Sentry hook to logrus
	levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
	hook, err := sentrylogrus.New(levels, sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     cfg.AppVersion,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to initialize Sentry hook")
	} else {
		logger.AddHook(hook)
		logger.Info("Sentry integration initialized successfully")
	}

	return logger, nil
}

// initServices builds the auth and generation services from configuration
func initServices(deps Dependencies) (*services, error) {
	cfg := deps.Config
	customLogger := log.New(deps.Logger)

	jwtService, err := jwt.NewJWTService(cfg.Auth.JWTSecret, "quillpost", cfg.Auth.TokenTTL)
	if err != nil {
		deps.Logger.WithError(err).Error("Failed to initialize JWT service")
		return nil, err
	}

	userRepo := internalUser.NewRepository(deps.DB)
	hasher := internalAuth.NewBcryptHasher(cfg.Auth.BcryptCost)

	var limiter internalAuth.AttemptLimiter
	if deps.Redis != nil {
		limiter = internalAuth.NewRedisLimiter(
			deps.Redis,
			cfg.Auth.MaxFailedLogins,
			cfg.Auth.MaxFailedLoginsPerIP,
			cfg.Auth.LockoutWindow,
		)
	} else {
		deps.Logger.Warn("Redis unavailable, failed login throttling disabled")
	}

	var verifier internalAuth.IdentityVerifier
	if cfg.Auth.VerifiesFederatedIdentity() {
		opt := option.WithoutAuthentication()
		if cfg.Auth.FirebaseCredentialsFile != "" {
			opt = option.WithCredentialsFile(cfg.Auth.FirebaseCredentialsFile)
		}
		fv, err := firebase.NewVerifier(context.Background(), cfg.Auth.FirebaseProjectID, opt)
		if err != nil {
			deps.Logger.WithError(err).Error("Failed to initialize Firebase verifier")
			return nil, err
		}
		verifier = fv
	} else {
		deps.Logger.Warn("FIREBASE_PROJECT_ID not set, Google sign-in profiles are trusted without verification")
	}

	authService := internalAuth.NewService(userRepo, hasher, jwtService, limiter, verifier, customLogger)

	var completer generate.Completer
	if cfg.Generate.Enabled() {
		completer = generate.NewOpenAICompleter(cfg.Generate.APIKey, cfg.Generate.Model, cfg.Generate.BaseURL, cfg.Generate.Timeout)
	} else {
		deps.Logger.Warn("OPENAI_API_KEY not set, AI generation disabled")
	}
	generateService := generate.NewService(completer, cfg.Generate.MaxPromptLength, customLogger)

	deps.Logger.Info("All services initialized successfully")
	return &services{
		jwtService:      jwtService,
		authService:     authService,
		generateService: generateService,
		logger:          customLogger,
	}, nil
}

// SetupEngine creates a new Gin engine with default middleware
func SetupEngine(cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

// SetupCORS configures CORS settings
func SetupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 24 * time.Hour

	r.Use(cors.New(corsConfig))
}

// SetupCSRFProtection enables CSRF protection when a secret is configured
func SetupCSRFProtection(r *gin.Engine, cfg *config.AppConfig, svc *services) bool {
	if cfg.CSRFSecret == "" {
		return false
	}
	r.Use(csrfAPI.Protect(cfg.CSRFSecret, cfg.CSRFSecure, csrfMaxAge, svc.logger))
	return true
}

// SetupCsrfRoutes configures CSRF-related routes
func SetupCsrfRoutes(r *gin.Engine, svc *services) {
	v1 := r.Group("/api/v1")

	csrfHandler := csrfAPI.NewHandler(csrfMaxAge, svc.logger)
	csrfAPI.RegisterPublicRoutes(v1, csrfHandler)
}

// SetupAuthRoutes configures auth-related routes
func SetupAuthRoutes(r *gin.Engine, cfg *config.AppConfig, svc *services) {
	v1 := r.Group("/api/v1")

	cookie := authAPI.NewCookieConfig(cfg.Auth.CookieName, cfg.Auth.CookieDomain, cfg.IsProduction())
	authHandler := authAPI.NewHandler(svc.authService, cookie, svc.logger)

	// Register public auth routes
	authAPI.RegisterPublicRoutes(v1, authHandler)

	// Create authenticated route group
	authGroup := v1.Group("/auth")
	authGroup.Use(middleware.SessionAuth(svc.jwtService, cfg.Auth.CookieName))
	authAPI.RegisterProtectedRoutes(authGroup, authHandler)
}

// SetupBlogRoutes configures blog authoring routes
func SetupBlogRoutes(r *gin.Engine, cfg *config.AppConfig, svc *services) {
	v1 := r.Group("/api/v1")

	blogHandler := blogAPI.NewHandler(svc.generateService, svc.logger)

	blogGroup := v1.Group("/blog")
	blogGroup.Use(middleware.SessionAuth(svc.jwtService, cfg.Auth.CookieName))
	blogAPI.RegisterProtectedRoutes(blogGroup, blogHandler)
}

// SetupHealthRoutes reports whether the database and Redis answer
func SetupHealthRoutes(r *gin.Engine, deps Dependencies) {
	checks := map[string]func(context.Context) error{}
	if deps.DB != nil {
		checks["database"] = func(ctx context.Context) error { return db.Health(ctx, deps.DB) }
	}
	if deps.Redis != nil {
		checks["redis"] = deps.Redis.Ping
	}

	r.GET("/api/v1/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		code := http.StatusOK
		components := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps.Logger.WithError(err).WithField("component", name).Error("Health check failed")
				components[name] = "down"
				code = http.StatusServiceUnavailable
				continue
			}
			components[name] = "up"
		}

		statusText := "ok"
		if code != http.StatusOK {
			statusText = "degraded"
		}
		c.JSON(code, gin.H{"status": statusText, "components": components})
	})
}

// SetupRouter creates and configures the main router with all routes
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Config == nil || deps.Config.Auth == nil || deps.Config.Generate == nil {
		return nil, errors.New("router requires a loaded configuration")
	}
	if deps.DB == nil {
		return nil, errors.New("router requires a database connection")
	}
	if deps.Logger == nil {
		deps.Logger = logrus.New()
	}

	svc, err := initServices(deps)
	if err != nil {
		// This error is already logged in initServices
		return nil, err
	}

	r := SetupEngine(deps.Config)

	SetupCORS(r, deps.Config)

	if !SetupCSRFProtection(r, deps.Config, svc) {
		deps.Logger.Warn("CSRF_SECRET not set, CSRF protection disabled")
	}

	SetupHealthRoutes(r, deps)
	SetupCsrfRoutes(r, svc)
	SetupAuthRoutes(r, deps.Config, svc)
	SetupBlogRoutes(r, deps.Config, svc)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":    false,
			"statusCode": http.StatusNotFound,
			"code":       status.StatusNotFound,
			"message":    status.Text(status.StatusNotFound),
		})
	})

	deps.Logger.Info("Router setup completed successfully")
	return r, nil
}
