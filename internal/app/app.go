package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	authhandler "github.com/xw1nchester/foodcatalog-backend/internal/auth/handler"
	jwtauth "github.com/xw1nchester/foodcatalog-backend/internal/auth/jwt"
	"github.com/xw1nchester/foodcatalog-backend/internal/auth/password"
	authservice "github.com/xw1nchester/foodcatalog-backend/internal/auth/service"
	branddb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand/db"
	brandhandler "github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand/handler"
	brandservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand/service"
	categorydb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/db"
	categoryhandler "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/handler"
	categoryservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/category/service"
	productdb "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/db"
	producthandler "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/handler"
	productservice "github.com/xw1nchester/foodcatalog-backend/internal/catalog/product/service"
	catalogdochandler "github.com/xw1nchester/foodcatalog-backend/internal/catalogdoc/handler"
	catalogdocservice "github.com/xw1nchester/foodcatalog-backend/internal/catalogdoc/service"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
	"github.com/xw1nchester/foodcatalog-backend/internal/guard"
	guarddb "github.com/xw1nchester/foodcatalog-backend/internal/guard/db"
	"github.com/xw1nchester/foodcatalog-backend/internal/handlers"
	careerdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/db"
	careerhandler "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/handler"
	careerservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career/service"
	contactdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/db"
	contacthandler "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/handler"
	contactservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact/service"
	exportrequestdb "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/db"
	exportrequesthandler "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/handler"
	exportrequestservice "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest/service"
	dishdb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/db"
	dishhandler "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/handler"
	dishservice "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish/service"
	dishcategorydb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory/db"
	dishcategoryhandler "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory/handler"
	dishcategoryservice "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory/service"
	recipedb "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/db"
	recipehandler "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/handler"
	recipeservice "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe/service"
	searchdb "github.com/xw1nchester/foodcatalog-backend/internal/search/db"
	searchhandler "github.com/xw1nchester/foodcatalog-backend/internal/search/handler"
	searchservice "github.com/xw1nchester/foodcatalog-backend/internal/search/service"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	storagehandler "github.com/xw1nchester/foodcatalog-backend/internal/storage/handler"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage/local"
	miniostore "github.com/xw1nchester/foodcatalog-backend/internal/storage/minio"
	uploadhandler "github.com/xw1nchester/foodcatalog-backend/internal/upload/handler"
	uploadservice "github.com/xw1nchester/foodcatalog-backend/internal/upload/service"
	minioclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/foodcatalog-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/foodcatalog-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/foodcatalog-backend/docs"
)

const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// A brand write carries up to three images; the rest of a multipart body is
// small text fields.
const (
	maxFilesPerRequest = 3
	formOverhead       = 1 << 20
)

type App struct {
	HTTPServer *http.Server
	pgClient   *pgxpool.Pool
	log        *zap.Logger
}

func NewApp(ctx context.Context, log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		ctx,
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	fileStore, err := newFileStore(ctx, cfg)
	if err != nil {
		log.Fatal(err.Error())
	}

	files := storage.NewFiles(fileStore, log)

	for _, dir := range []string{
		storage.DirBrands,
		storage.DirCategories,
		storage.DirProducts,
		storage.DirDishCategories,
		storage.DirDishes,
		storage.DirRecipes,
		storage.DirCareers,
		storage.DirUpload,
		storage.DirCatalog,
	} {
		if err := files.EnsureDir(ctx, dir); err != nil {
			log.Fatal("failed to prepare public tree", zap.String("dir", dir), zap.Error(err))
		}
	}

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	storagehandler.New(files, log).Register(router)

	maxUploadSize := cfg.Storage.MaxUploadSize

	txManager := pgtx.NewPgManager(pgClient)

	deleteGuard := guard.New(guarddb.New(pgClient, log), log)

	tokenManager := jwtauth.NewManager(cfg.JWT)

	authMiddleware := jwtauth.NewMiddleware(log, tokenManager)

	passwordManager := password.New(log)

	authService := authservice.New(cfg.Admin, tokenManager, passwordManager, log)

	brandService := brandservice.New(branddb.New(pgClient, log), files, maxUploadSize, deleteGuard, txManager, log)

	categoryService := categoryservice.New(
		categorydb.New(pgClient, log),
		brandService,
		files,
		maxUploadSize,
		deleteGuard,
		txManager,
		log,
	)

	productService := productservice.New(productdb.New(pgClient, log), categoryService, files, maxUploadSize, log)

	dishCategoryService := dishcategoryservice.New(
		dishcategorydb.New(pgClient, log),
		files,
		maxUploadSize,
		deleteGuard,
		txManager,
		log,
	)

	dishService := dishservice.New(
		dishdb.New(pgClient, log),
		dishCategoryService,
		files,
		maxUploadSize,
		deleteGuard,
		txManager,
		log,
	)

	recipeService := recipeservice.New(
		recipedb.New(pgClient, log),
		dishService,
		productService,
		files,
		maxUploadSize,
		log,
	)

	apiHandlers := []handlers.Handler{
		authhandler.New(authService, authMiddleware, log),
		uploadhandler.New(uploadservice.New(files, maxUploadSize, log), authMiddleware, maxUploadSize, log),
		brandhandler.New(brandService, authMiddleware, log),
		categoryhandler.New(categoryService, authMiddleware, log),
		producthandler.New(productService, authMiddleware, log),
		dishcategoryhandler.New(dishCategoryService, authMiddleware, log),
		dishhandler.New(dishService, authMiddleware, log),
		recipehandler.New(recipeService, authMiddleware, log),
		contacthandler.New(contactservice.New(contactdb.New(pgClient, log), log), authMiddleware, log),
		careerhandler.New(
			careerservice.New(careerdb.New(pgClient, log), files, maxUploadSize, log),
			authMiddleware,
			log,
		),
		exportrequesthandler.New(
			exportrequestservice.New(exportrequestdb.New(pgClient, log), log),
			authMiddleware,
			log,
		),
		searchhandler.New(searchservice.New(searchdb.New(pgClient, log), log), log),
		catalogdochandler.New(
			catalogdocservice.New(files, maxUploadSize, log),
			authMiddleware,
			maxUploadSize,
			log,
		),
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestSize(maxFilesPerRequest*maxUploadSize + formOverhead))

		r.Get("/ping", PingHandler)

		for _, h := range apiHandlers {
			h.Register(r)
		}
	})

	log.Info("handlers registered", zap.Int("count", len(apiHandlers)))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		pgClient:   pgClient,
		log:        log,
	}
}

func newFileStore(ctx context.Context, cfg config.Config) (storage.FileStore, error) {
	switch cfg.Storage.Driver {
	case StorageDriverLocal:
		return local.NewDir(cfg.Storage.PublicDir)
	case StorageDriverMinio:
		client, err := minioclient.New(ctx, minioclient.Config{
			Endpoint:        cfg.Minio.Endpoint,
			AccessKeyID:     cfg.Minio.AccessKeyID,
			SecretAccessKey: cfg.Minio.SecretAccessKey,
			UseSSL:          cfg.Minio.UseSSL,
			Bucket:          cfg.Minio.Bucket,
		})
		if err != nil {
			return nil, err
		}

		return miniostore.New(client, cfg.Minio.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for the running ones and closes the pool.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.pgClient.Close()

	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
