package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shortly/keygen-service/internal/generator"
	pb "github.com/shortly/keygen-service/proto/keygen"
)

type stubGenerator struct {
	key string
	err error
}

func (s *stubGenerator) Generate(ctx context.Context) (string, error) {
	return s.key, s.err
}

func TestPing(t *testing.T) {
	s := &keygenServer{generator: &stubGenerator{}}
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.GetResponse())
}

func TestGenerateKey(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		s := &keygenServer{generator: &stubGenerator{key: "abcdef12"}}
		resp, err := s.GenerateKey(context.Background(), &pb.GenerateKeyRequest{})
		require.NoError(t, err)
		assert.Equal(t, "abcdef12", resp.GetKey())
	})

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"Counter Unavailable", fmt.Errorf("%w: incr timed out", generator.ErrCounterUnavailable), codes.Unavailable},
		{"Key Space Exhausted", fmt.Errorf("%w: counter value 99 is outside the permutation period", generator.ErrKeySpaceExhausted), codes.ResourceExhausted},
		{"Random Source Failure", fmt.Errorf("%w: entropy unavailable", generator.ErrRandomSource), codes.Internal},
		{"Unknown Error", errors.New("boom"), codes.Internal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := &keygenServer{generator: &stubGenerator{err: c.err}}
			_, err := s.GenerateKey(context.Background(), &pb.GenerateKeyRequest{})
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, c.code, st.Code())
			assert.Contains(t, st.Message(), c.err.Error())
		})
	}
}
