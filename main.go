package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/cache"
	"github.com/camden-git/hrmbackend/config"
	"github.com/camden-git/hrmbackend/database"
	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/handlers"
	"github.com/camden-git/hrmbackend/logger"
	"github.com/camden-git/hrmbackend/media"
	"github.com/camden-git/hrmbackend/realtime"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/services"
	"github.com/camden-git/hrmbackend/workers"
)

func main() {
	if err := config.LoadEnv(".env", ".env.local"); err != nil {
		log.Printf("Info: failed to load env files: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "hrmbackend")
	if err != nil {
		log.Fatalf("FATAL: Failed to build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, p := range []string{cfg.AvatarsPath, filepath.Dir(cfg.DatabasePath)} {
		if err := os.MkdirAll(p, 0755); err != nil {
			return err
		}
	}

	db, err := database.InitGormDB(cfg.DatabasePath, cfg.DBLogLevel, zl)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.AutoMigrateModels(db); err != nil {
		return err
	}

	mediaStore, err := media.NewLocalStorage(cfg.MediaStoragePath, map[media.AssetType]string{
		media.AssetTypeAvatar: cfg.AvatarsSubDir,
	}, zl)
	if err != nil {
		return err
	}

	var catalogCache services.CatalogCache
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zl.Warn("redis unavailable, technology catalog cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer client.Close()
			catalogCache = cache.NewTechnologyCache(client, cfg.CatalogCacheTTL)
			zl.Info("technology catalog cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CatalogCacheTTL))
		}
	}

	hub := realtime.NewHub(zl)
	go hub.Run(ctx)

	sinks := []events.Sink{hub}
	if cfg.NATSURL != "" {
		conn, err := events.ConnectNATS(cfg.NATSURL, zl)
		if err != nil {
			zl.Warn("nats unavailable, change events stay local", zap.String("url", cfg.NATSURL), zap.Error(err))
		} else {
			defer conn.Drain()
			sinks = append(sinks, events.NewNATSSink(conn, cfg.NATSSubjectPrefix))
		}
	}

	zl.Info("starting event dispatcher", zap.Int("workers", cfg.NumEventWorkers), zap.Int("queue_size", cfg.EventQueueSize))
	dispatcher := workers.NewEventDispatcher(zl, cfg.EventQueueSize, cfg.NumEventWorkers, sinks...)
	defer dispatcher.Stop()

	uow := repository.NewUnitOfWork(db)
	people := repository.NewPersonRepository(db)
	locations := repository.NewLocationRepository(db)
	groups := repository.NewGroupRepository(db)
	technologies := repository.NewTechnologyRepository(db)
	categories := repository.NewCategoryRepository(db)
	accounts := repository.NewAccountRepository(db)

	limits := services.PageLimits{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize}
	catalog := services.NewTechnologyCatalog(technologies, catalogCache, zl)
	authService := services.NewAuthService(accounts, uow, cfg.JWTSecret, cfg.JWTExpiration(), zl)
	accountService := services.NewAccountService(accounts, uow, dispatcher, limits, zl)

	if cfg.BootstrapAdminPassword != "" {
		if err := accountService.EnsureAdmin(ctx, cfg.BootstrapAdminUser, cfg.BootstrapAdminPassword); err != nil {
			return err
		}
	}

	avatars, err := handlers.AssetServer(mediaStore, cfg.AvatarsSubDir, zl)
	if err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.Router{
		Auth:        authService,
		AuthHandler: handlers.NewAuthHandler(authService),
		Persons: &handlers.PersonHandler{
			Service:    services.NewPersonService(people, locations, groups, catalog, uow, dispatcher, limits, cfg.SystemActor, zl),
			Store:      mediaStore,
			AvatarSize: cfg.AvatarSize,
			Logger:     zl,
		},
		PersonDetails: &handlers.PersonDetailsHandler{
			Projects:        services.NewProjectService(repository.NewProjectRepository(db), people, groups, catalog, uow, dispatcher, zl),
			CategoryPersons: services.NewCategoryPersonService(repository.NewCategoryPersonRepository(db), people, categories, catalog, uow, dispatcher, zl),
			Educations:      services.NewEducationService(repository.NewEducationRepository(db), people, uow, dispatcher, zl),
		},
		Technologies:   &handlers.TechnologyHandler{Service: services.NewTechnologyService(technologies, categories, catalog, uow, dispatcher, zl)},
		Categories:     &handlers.CategoryHandler{Service: services.NewCategoryService(categories, catalog, uow, dispatcher, zl)},
		Groups:         &handlers.GroupHandler{Service: services.NewGroupService(groups, catalog, uow, dispatcher, zl)},
		Locations:      &handlers.LocationHandler{Service: services.NewLocationService(locations, uow, dispatcher, zl)},
		Accounts:       &handlers.AccountHandler{Service: accountService},
		Reports:        &handlers.ReportHandler{DB: sqlDB, Logger: zl},
		Permissions:    handlers.NewPermissionsHandler(),
		Avatars:        avatars,
		AvatarsSubDir:  cfg.AvatarsSubDir,
		WebSocket:      hub.ServeWS,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         zl,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server listening", zap.String("addr", server.Addr), zap.String("database", cfg.DatabasePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
