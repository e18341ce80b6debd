package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"vehicle/finder/internal/client"
	"vehicle/finder/internal/config"
	"vehicle/finder/internal/domain"
	"vehicle/finder/internal/queue"
	"vehicle/finder/internal/repository"
	"vehicle/finder/internal/server"
	"vehicle/finder/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Container holds all initialized components
type Container struct {
	Config         *config.Config
	Client         client.RecommenderClient
	Queue          queue.Queue
	recorders      []service.Recorder
	controllerOpts []service.Option

	db   *pgxpool.Pool
	repo repository.SubmissionRepository
}

// New creates a new container with all dependencies initialized. The lead
// database and the event stream are only connected when enabled.
func New(ctx context.Context, cfg *config.Config, opts ...service.Option) (*Container, error) {
	container := &Container{
		Config:         cfg,
		Client:         client.NewRecommenderClient(cfg.Recommender),
		controllerOpts: opts,
	}

	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		container.db = db

		repo := repository.NewSubmissionRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		container.repo = repo
		container.recorders = append(container.recorders, repo)
		log.Info("✅ Connected to database successfully")
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		container.Queue = queue.NewRedisQueue(rdb, cfg.Redis)
		container.recorders = append(container.recorders, container.Queue)
		log.Info("✅ Connected to Redis successfully")
	}

	return container, nil
}

// NewController opens a form session wired to the container's client and recorders.
func (c *Container) NewController(category domain.VehicleCategory, opts ...service.Option) *service.Controller {
	all := make([]service.Option, 0, len(c.controllerOpts)+len(opts)+1)
	all = append(all, service.WithRecorders(c.recorders...))
	all = append(all, c.controllerOpts...)
	all = append(all, opts...)
	return service.NewController(category, c.Client, all...)
}

// Run serves the HTTP API until ctx is cancelled.
func (c *Container) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              c.Config.Server.Addr(),
		Handler:           server.New(func(category domain.VehicleCategory) *service.Controller { return c.NewController(category) }).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("🌐 Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
