package env

import (
	"fmt"
	"os"
	"time"

	"minigames_backend/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Сырая структура config.yaml
type gamesYAML struct {
	Games struct {
		StartingBalance string `yaml:"starting_balance"`
		MaxBet          string `yaml:"max_bet"`
		Dice            struct {
			TargetRTP string `yaml:"target_rtp"`
		} `yaml:"dice"`
		Mines struct {
			GridSize int `yaml:"grid_size"`
			MinMines int `yaml:"min_mines"`
			MaxMines int `yaml:"max_mines"`
		} `yaml:"mines"`
		Crash struct {
			TickStep       string `yaml:"tick_step"`
			TickIntervalMS int    `yaml:"tick_interval_ms"`
			HistorySize    int    `yaml:"history_size"`
		} `yaml:"crash"`
		Blackjack struct {
			DealerStand int `yaml:"dealer_stand"`
		} `yaml:"blackjack"`
	} `yaml:"games"`
}

type gamesConfig struct {
	startingBalance decimal.Decimal
	maxBet          decimal.Decimal

	diceTargetRTP decimal.Decimal

	minesGridSize int
	minesMinCount int
	minesMaxCount int

	crashTickStep     decimal.Decimal
	crashTickInterval time.Duration
	crashHistorySize  int

	blackjackDealerStand int
}

func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var parsed gamesYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	startingBalance, err := decimal.NewFromString(parsed.Games.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid starting_balance: %w", err)
	}

	maxBet, err := decimal.NewFromString(parsed.Games.MaxBet)
	if err != nil {
		return nil, fmt.Errorf("invalid max_bet: %w", err)
	}

	targetRTP, err := decimal.NewFromString(parsed.Games.Dice.TargetRTP)
	if err != nil {
		return nil, fmt.Errorf("invalid dice target_rtp: %w", err)
	}

	tickStep, err := decimal.NewFromString(parsed.Games.Crash.TickStep)
	if err != nil {
		return nil, fmt.Errorf("invalid crash tick_step: %w", err)
	}

	cfg := &gamesConfig{
		startingBalance:      startingBalance,
		maxBet:               maxBet,
		diceTargetRTP:        targetRTP,
		minesGridSize:        parsed.Games.Mines.GridSize,
		minesMinCount:        parsed.Games.Mines.MinMines,
		minesMaxCount:        parsed.Games.Mines.MaxMines,
		crashTickStep:        tickStep,
		crashTickInterval:    time.Duration(parsed.Games.Crash.TickIntervalMS) * time.Millisecond,
		crashHistorySize:     parsed.Games.Crash.HistorySize,
		blackjackDealerStand: parsed.Games.Blackjack.DealerStand,
	}

	if cfg.minesGridSize <= 0 || cfg.minesMinCount < 1 || cfg.minesMaxCount >= cfg.minesGridSize {
		return nil, fmt.Errorf("invalid mines bounds in games config")
	}
	if !cfg.crashTickStep.IsPositive() || cfg.crashTickInterval <= 0 || cfg.crashHistorySize <= 0 {
		return nil, fmt.Errorf("invalid crash settings in games config")
	}
	if cfg.blackjackDealerStand < 2 || cfg.blackjackDealerStand > 21 {
		return nil, fmt.Errorf("invalid blackjack dealer_stand in games config")
	}

	return cfg, nil
}

func (cfg *gamesConfig) StartingBalance() decimal.Decimal { return cfg.startingBalance }
func (cfg *gamesConfig) MaxBet() decimal.Decimal          { return cfg.maxBet }

func (cfg *gamesConfig) DiceTargetRTP() decimal.Decimal { return cfg.diceTargetRTP }

func (cfg *gamesConfig) MinesGridSize() int { return cfg.minesGridSize }
func (cfg *gamesConfig) MinesMinCount() int { return cfg.minesMinCount }
func (cfg *gamesConfig) MinesMaxCount() int { return cfg.minesMaxCount }

func (cfg *gamesConfig) CrashTickStep() decimal.Decimal     { return cfg.crashTickStep }
func (cfg *gamesConfig) CrashTickInterval() time.Duration   { return cfg.crashTickInterval }
func (cfg *gamesConfig) CrashHistorySize() int              { return cfg.crashHistorySize }

func (cfg *gamesConfig) BlackjackDealerStand() int { return cfg.blackjackDealerStand }
