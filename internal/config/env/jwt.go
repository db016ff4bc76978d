package env

import (
	"fmt"
	"os"
	"time"

	"minigames_backend/internal/config"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"
	sessionDurationEnvName     = "SESSION_DURATION"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
	sessionDuration      time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessTokenDuration := os.Getenv(accessTokenDurationEnvName)
	if len(accessTokenDuration) == 0 {
		return nil, fmt.Errorf("access token duration not found")
	}

	accessTokenDurationParsed, err := time.ParseDuration(accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token duration: %w", err)
	}

	sessionDuration := os.Getenv(sessionDurationEnvName)
	if len(sessionDuration) == 0 {
		return nil, fmt.Errorf("session duration not found")
	}

	sessionDurationParsed, err := time.ParseDuration(sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid session duration: %w", err)
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDurationParsed,
		sessionDuration:      sessionDurationParsed,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}

func (j *jwtConfig) SessionDuration() time.Duration {
	return j.sessionDuration
}
