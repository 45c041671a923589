package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shortly/keygen-service/internal/generator"
	pkglog "github.com/shortly/keygen-service/pkg/log"
	pb "github.com/shortly/keygen-service/proto/keygen"
)

type keygenServer struct {
	pb.UnimplementedKeyGeneratorServiceServer
	generator generator.KeyGenerator
}

func (s *keygenServer) GenerateKey(ctx context.Context, req *pb.GenerateKeyRequest) (*pb.GenerateKeyResponse, error) {
	key, err := s.generator.Generate(ctx)
	if err != nil {
		logger := pkglog.Ctx(ctx)
		logger.Error().Err(err).Msg("key generation failed")
		return nil, statusFromError(err)
	}
	return &pb.GenerateKeyResponse{Key: key}, nil
}

func (s *keygenServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Response: "pong"}, nil
}

// statusFromError maps generator errors to transport codes. Error messages
// propagate unchanged; only the code is derived here.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, generator.ErrCounterUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, generator.ErrKeySpaceExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, gen generator.KeyGenerator, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	pb.RegisterKeyGeneratorServiceServer(s, &keygenServer{
		generator: gen,
	})

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
