package env

import (
	"errors"
	"os"

	"minigames_backend/internal/config"
)

const (
	httpAddressEnvName = "HTTP_ADDRESS"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		return nil, errors.New("http address not found")
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
