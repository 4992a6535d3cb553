package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/config"
	"github.com/marquee-dev/marquee/internal/auth"
	"github.com/marquee-dev/marquee/internal/database"
	"github.com/marquee-dev/marquee/internal/handler"
	"github.com/marquee-dev/marquee/internal/limiter"
	"github.com/marquee-dev/marquee/internal/mq"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/router"
	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

// login, signup and booking are the only rate limited endpoints; the budget
// is per client IP per scope per minute
const (
	rateLimit  = 20
	rateWindow = time.Minute
)

type App struct {
	Config *config.Config
	Logger *zap.Logger

	DB      *gorm.DB
	Limiter *limiter.RateLimiter
	MQConn  *amqp.Connection

	UserService    domain.UserService
	MovieService   domain.MovieService
	TheaterService domain.TheaterService
	ShowingService domain.ShowingService
	BookingService domain.BookingService
	SnackService   domain.SnackService

	httpServer *http.Server
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var rl *limiter.RateLimiter
	if cfg.RedisAddr != "" {
		rl, err = limiter.NewRateLimiter(cfg.RedisAddr, rateLimit, rateWindow)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
	} else {
		logger.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		if err := mq.InitQueues(mqConn); err != nil {
			return nil, fmt.Errorf("declare queues: %w", err)
		}
	} else {
		logger.Warn("RABBIT_MQ_URL not set, booking events disabled")
	}
	events := mq.NewPublisher(mqConn, logger)

	userRepo := repository.NewUserRepoGorm(db)
	movieRepo := repository.NewMovieRepoGorm(db)
	theaterRepo := repository.NewTheaterRepoGorm(db)
	showingRepo := repository.NewShowingRepoGorm(db)
	bookingRepo := repository.NewBookingRepoGorm(db)
	snackRepo := repository.NewSnackRepoGorm(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userService := domain.NewUserService(userRepo, tokens, cfg.BcryptCost)
	movieService := domain.NewMovieService(movieRepo)
	theaterService := domain.NewTheaterService(theaterRepo)
	showingService := domain.NewShowingService(showingRepo, movieRepo, theaterRepo)
	bookingService := domain.NewBookingService(db, bookingRepo, showingRepo, events)
	snackService := domain.NewSnackService(snackRepo)

	handlers := router.Handlers{
		Users:    handler.NewUserHandler(userService, logger),
		Movies:   handler.NewMovieHandler(movieService, logger),
		Theaters: handler.NewTheaterHandler(theaterService, logger),
		Showings: handler.NewShowingHandler(showingService, logger),
		Bookings: handler.NewBookingHandler(bookingService, logger),
		Snacks:   handler.NewSnackHandler(snackService, logger),
	}

	engine := router.New(handlers, tokens, rl, logger)

	return &App{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		Limiter:        rl,
		MQConn:         mqConn,
		UserService:    userService,
		MovieService:   movieService,
		TheaterService: theaterService,
		ShowingService: showingService,
		BookingService: bookingService,
		SnackService:   snackService,
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: engine,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("HTTP server listening", zap.String("addr", a.Config.Addr), zap.String("env", a.Config.Env))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return a.httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	if closeErr := a.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (a *App) Close() error {
	if a.MQConn != nil {
		_ = a.MQConn.Close()
	}
	if err := a.Limiter.Close(); err != nil {
		return err
	}
	return database.Close(a.DB)
}
