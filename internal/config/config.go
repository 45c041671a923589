package config

import (
	"fmt"

	"github.com/shortly/keygen-service/internal/generator"
	pkgconfig "github.com/shortly/keygen-service/pkg/config"
)

type Config struct {
	GRPC        GRPCConfig
	Generator   GeneratorConfig
	Redis       RedisConfig
	Counter     CounterConfig
	Permutation PermutationConfig
	Log         LogConfig
}

type GRPCConfig struct {
	Host string
	Port int
}

type GeneratorConfig struct {
	Type      string
	KeyLength int `mapstructure:"key_length"`
	Alphabet  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CounterConfig struct {
	Namespace string
}

type PermutationConfig struct {
	Prime         uint64
	PrimitiveRoot uint64 `mapstructure:"primitive_root"`
	CounterStart  uint64 `mapstructure:"counter_start"`
	Verify        bool
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 8080)
	v.SetDefault("generator.type", string(generator.StrategyRandom))
	v.SetDefault("generator.key_length", 8)
	v.SetDefault("generator.alphabet", generator.DefaultAlphabet)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("counter.namespace", "incr:count")
	v.SetDefault("permutation.prime", 1000003)
	v.SetDefault("permutation.primitive_root", 2)
	v.SetDefault("permutation.counter_start", 0)
	v.SetDefault("permutation.verify", false)
	v.SetDefault("log.level", "info")

	// Override from environment
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("generator.type", "GENERATOR_TYPE")
	v.BindEnv("generator.key_length", "KEY_LENGTH")
	v.BindEnv("generator.alphabet", "KEY_ALPHABET")
	v.BindEnv("redis.address", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("counter.namespace", "COUNTER_NAMESPACE")
	v.BindEnv("permutation.prime", "GENERATOR_PRIME")
	v.BindEnv("permutation.primitive_root", "GENERATOR_PRIME_PRIMITIVE")
	v.BindEnv("permutation.counter_start", "GENERATOR_INCREMENT_START")
	v.BindEnv("permutation.verify", "GENERATOR_VERIFY")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch generator.Strategy(cfg.Generator.Type) {
	case generator.StrategyRandom, generator.StrategySequential, generator.StrategyPermutation:
	default:
		return nil, fmt.Errorf("unsupported generator type: %s", cfg.Generator.Type)
	}

	return &cfg, nil
}
