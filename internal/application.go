package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/killer-backend/internal/config"
	"github.com/rocketscienceinc/killer-backend/internal/entity"
	"github.com/rocketscienceinc/killer-backend/internal/repository"
	"github.com/rocketscienceinc/killer-backend/internal/repository/storage"
	"github.com/rocketscienceinc/killer-backend/internal/usecase"
	"github.com/rocketscienceinc/killer-backend/transport/rest"
	"github.com/rocketscienceinc/killer-backend/transport/websocket"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrEmptyCharacters = errors.New("character catalog is empty")
)

type redisChecker struct {
	client *redis.Client
}

func (that redisChecker) Check(ctx context.Context) error {
	return that.client.Ping(ctx).Err()
}

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	if len(conf.Game.Characters) == 0 {
		return ErrEmptyCharacters
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	characterRepo := repository.NewCharacterRepository(redisStorage, conf.Game.Characters)

	// claims left over from a previous process belong to connections that no longer exist
	if err = characterRepo.Reset(ctx); err != nil {
		return fmt.Errorf("could not reset character registry: %w", err)
	}

	game := entity.NewGame(characterRepo,
		entity.WithMaxPlayers(conf.Game.MaxPlayers),
		entity.WithResetTimeout(conf.Game.ResetTimeout),
	)
	gameUseCase := usecase.NewGameUseCase(logger, game, characterRepo)

	restServer := rest.New(logger, gameUseCase, characterRepo, map[string]rest.Checker{
		"redis": redisChecker{client: redisStorage},
	})
	wsServer := websocket.New(logger, gameUseCase)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
