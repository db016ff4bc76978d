package env

import (
	"errors"
	"os"

	"minigames_backend/internal/config"
)

const (
	redisAddressEnvName  = "REDIS_ADDRESS"
	redisPasswordEnvName = "REDIS_PASSWORD"
)

type redisConfig struct {
	address  string
	password string
}

func NewRedisConfig() (config.RedisConfig, error) {
	address := os.Getenv(redisAddressEnvName)
	if len(address) == 0 {
		return nil, errors.New("redis address not found")
	}

	return &redisConfig{
		address:  address,
		password: os.Getenv(redisPasswordEnvName),
	}, nil
}

func (cfg *redisConfig) Address() string {
	return cfg.address
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}
