package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	SessionDuration() time.Duration
}

type GamesConfig interface {
	StartingBalance() decimal.Decimal
	MaxBet() decimal.Decimal

	DiceTargetRTP() decimal.Decimal

	MinesGridSize() int
	MinesMinCount() int
	MinesMaxCount() int

	CrashTickStep() decimal.Decimal
	CrashTickInterval() time.Duration
	CrashHistorySize() int

	BlackjackDealerStand() int
}
