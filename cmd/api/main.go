package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/elearnhq/lessons-ms-go/internal/cache"
	"github.com/elearnhq/lessons-ms-go/internal/config"
	"github.com/elearnhq/lessons-ms-go/internal/db"
	"github.com/elearnhq/lessons-ms-go/internal/genai"
	"github.com/elearnhq/lessons-ms-go/internal/handler/api"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	cMiddleware "github.com/elearnhq/lessons-ms-go/internal/middleware"
	"github.com/elearnhq/lessons-ms-go/internal/optimiser"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/renderer"
	"github.com/elearnhq/lessons-ms-go/internal/repository/mariadb"
	"github.com/elearnhq/lessons-ms-go/internal/staging"
	"github.com/elearnhq/lessons-ms-go/internal/storage"
	"github.com/elearnhq/lessons-ms-go/internal/synthesis"
	"github.com/elearnhq/lessons-ms-go/internal/task"
	"github.com/elearnhq/lessons-ms-go/internal/transcoder"
	"github.com/elearnhq/lessons-ms-go/internal/transcriber"
	adminSvc "github.com/elearnhq/lessons-ms-go/internal/usecase/admin"
	courseSvc "github.com/elearnhq/lessons-ms-go/internal/usecase/course"
	translateSvc "github.com/elearnhq/lessons-ms-go/internal/usecase/translate"
	videoSvc "github.com/elearnhq/lessons-ms-go/internal/usecase/video"
	msuuid "github.com/elearnhq/lessons-ms-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, cfg.Buckets)

	stagingStore, err := staging.NewStore(cfg.StagingDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise staging dir: %v", err)
		os.Exit(1)
	}

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword, cfg.StagingSweepMaxAge)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewLRU(cfg.TranslationCacheSize)
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — using in-process cache, staging sweeps disabled")
	}

	videoRepo := mariadb.NewVideoRepository(database.DB)
	courseRepo := mariadb.NewCourseRepository(database.DB)
	adminRepo := mariadb.NewAdminRepository(database.DB)

	gen := genai.NewClient(cfg.GenAIEndpoint, cfg.GenAIAPIKey, cfg.GenAIModel)
	ffmpeg := transcoder.NewFFmpeg(cfg.FfmpegPath, cfg.FfprobePath, stagingStore)
	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder(), optimiser.NewPDFOptimizer())
	jwtSecret := []byte(cfg.JWTSecret)

	r := initRouter(ctx)
	authed := cMiddleware.WithAdminAuth(jwtSecret)

	ingesterSvc := videoSvc.NewVideoIngester(
		msuuid.NewUUID, videoRepo, stagingStore, strg,
		ffmpeg, transcriber.NewTranscriber(gen), synthesis.NewSynthesiser(gen),
		fo, optimiser.NewPageCounter(), dispatcher,
	)
	r.With(authed, cMiddleware.WithCourseID()).
		Post("/courses/{courseID}/videos", api.UploadVideoHandler(ingesterSvc))

	getVideoSvc := videoSvc.NewVideoGetter(videoRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithVideoID()).
		Get("/videos/{videoID}", api.GetVideoHandler(rendererSvc, getVideoSvc))

	listVideosSvc := videoSvc.NewVideoLister(videoRepo)
	r.With(cMiddleware.WithCourseID()).
		Get("/courses/{courseID}/videos", api.ListVideosHandler(listVideosSvc))

	createCourseSvc := courseSvc.NewCourseCreator(msuuid.NewUUID, courseRepo)
	r.With(authed).Post("/courses", api.CreateCourseHandler(createCourseSvc))

	r.Get("/courses", api.ListCoursesHandler(courseSvc.NewCourseLister(courseRepo)))
	r.With(cMiddleware.WithCourseID()).
		Get("/courses/{courseID}", api.GetCourseHandler(courseSvc.NewCourseGetter(courseRepo)))

	thumbnailSvc := courseSvc.NewThumbnailUploader(courseRepo, strg, fo)
	r.With(authed, cMiddleware.WithCourseID()).
		Put("/courses/{courseID}/thumbnail", api.UploadThumbnailHandler(thumbnailSvc))

	r.Post("/auth/admin/signup", api.RegisterAdminHandler(adminSvc.NewAdminRegistrar(msuuid.NewUUID, adminRepo, jwtSecret)))
	r.Post("/auth/admin/login", api.LoginAdminHandler(adminSvc.NewAdminAuthenticator(adminRepo, jwtSecret)))
	r.With(authed).Get("/auth/admin/profile", api.AdminProfileHandler(adminSvc.NewAdminProfiler(adminRepo)))

	translatorSvc := translateSvc.NewDescriptionTranslator(synthesis.NewTranslator(gen), ca)
	r.Post("/translate", api.TranslateHandler(translatorSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.PublicBaseURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
