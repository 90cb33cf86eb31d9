package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/coupon"
	v1Http "github.com/maison-aurelle/storefront/internal/delivery/v1/http"
	"github.com/maison-aurelle/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/maison-aurelle/storefront/internal/infrastructure/minio"
	"github.com/maison-aurelle/storefront/internal/repository/memory"
	s3Repo "github.com/maison-aurelle/storefront/internal/repository/minio"
	"github.com/maison-aurelle/storefront/internal/repository/pgdb"
	pgdbConv "github.com/maison-aurelle/storefront/internal/repository/pgdb/converter"
	"github.com/maison-aurelle/storefront/internal/repository/redis"
	redisConv "github.com/maison-aurelle/storefront/internal/repository/redis/converter"
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/clients"
	"github.com/maison-aurelle/storefront/pkg/closer"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
	"github.com/maison-aurelle/storefront/pkg/postgres"
)

// App собирает витрину: репозитории, юзкейсы, HTTP-сервер и outbox-воркер.
// Ресурсы регистрируются в closer и освобождаются в порядке LIFO.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker

	// Контекст фоновых компенсаций (зачистка MinIO); отменяется при останове.
	bgCtx    context.Context
	bgCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const forcedCloseTimeout = 2 * time.Second

	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedCloseTimeout),
	}
	a.bgCtx, a.bgCancel = context.WithCancel(context.Background())

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, a.bgCtx)
	a.closer.Add(imagesInfra.WaitForCleanup)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(_ context.Context) error {
		return producer.Close()
	})

	productRepo := newProductRepo(cfg, db, log)
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverter())
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverter())
	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartConverter(), log)
	favoritesRepo := redis.NewFavoritesRepo(redisClient)
	profileRepo := redis.NewProfileRepo(redisClient, redisConv.NewProfileConverter())
	sessionRepo := redis.NewSessionRepo(redisClient, redisConv.NewSessionConverter(), cfg.Redis)

	coupons := coupon.NewService(coupon.DefaultTable, cfg.Coupon.ApplyDelay)

	catalogUC := usecase.NewCatalogUC(productRepo, imagesInfra, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, coupons, cfg.Pricing, log)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, orderRepo, outboxRepo, productRepo, db.Pool, cfg.Pricing, log)
	favoritesUC := usecase.NewFavoritesUC(favoritesRepo, log)
	profileUC := usecase.NewProfileUC(profileRepo, log)
	sessionUC := usecase.NewSessionUC(sessionRepo, log)

	a.outboxWorker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	a.closer.Add(func(_ context.Context) error {
		a.outboxWorker.Stop()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.UseCases{
		Catalog:   catalogUC,
		Cart:      cartUC,
		Checkout:  checkoutUC,
		Favorites: favoritesUC,
		Profile:   profileUC,
		Session:   sessionUC,
	})

	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

// Run запускает воркер и HTTP-сервер и блокируется до сигнала или сбоя.
func (a *App) Run() error {
	a.outboxWorker.Start(a.bgCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.bgCancel()
	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// newProductRepo выбирает источник каталога: PostgreSQL или сидированная память.
func newProductRepo(cfg *config.Config, db *postgres.PgDatabase, log logger.Logger) usecase.ProductRepository {
	if cfg.Catalog.Provider == config.CatalogProviderMemory {
		log.Infof("catalog provider: memory, seed: %d, size: %d", cfg.Catalog.Seed, cfg.Catalog.Size)
		return memory.NewProductRepo(cfg.Catalog)
	}

	return pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
