package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/shortly/keygen-service/internal/config"
	"github.com/shortly/keygen-service/internal/counter"
	"github.com/shortly/keygen-service/internal/generator"
	keygrpc "github.com/shortly/keygen-service/internal/grpc"
	pkglog "github.com/shortly/keygen-service/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "keygen-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting keygen-service")

	alphabet, err := generator.NewAlphabet(cfg.Generator.Alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid alphabet")
	}

	// The counter-backed strategies share one Redis-owned atomic counter.
	strategy := generator.Strategy(cfg.Generator.Type)
	var (
		ctr generator.Counter
		rdb *redis.Client
	)
	if strategy == generator.StrategySequential || strategy == generator.StrategyPermutation {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctr = counter.NewRedis(rdb, cfg.Counter.Namespace)
		logger.Info().Str("addr", cfg.Redis.Address).Str("namespace", cfg.Counter.Namespace).Msg("redis counter initialized")
	}

	gen, err := generator.New(generator.Config{
		Strategy:  strategy,
		Alphabet:  alphabet,
		KeyLength: cfg.Generator.KeyLength,
		Permutation: generator.PermutationParams{
			Prime:         cfg.Permutation.Prime,
			PrimitiveRoot: cfg.Permutation.PrimitiveRoot,
			CounterStart:  cfg.Permutation.CounterStart,
			Verify:        cfg.Permutation.Verify,
		},
	}, ctr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create key generator")
	}
	logger.Info().Str("strategy", cfg.Generator.Type).Int("key_length", cfg.Generator.KeyLength).Msg("key generator initialized")

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := keygrpc.StartGRPCServer(grpcAddr, gen, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down keygen-service")
	grpcServer.GracefulStop()
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	logger.Info().Msg("keygen-service stopped")
}
