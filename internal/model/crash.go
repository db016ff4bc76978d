package model

import "github.com/shopspring/decimal"

type CrashPhase string

const (
	CrashPhaseIdle    CrashPhase = "idle"
	CrashPhaseRunning CrashPhase = "running"
	CrashPhaseCrashed CrashPhase = "crashed"
)

// Под-состояние игрока, ортогонально состоянию раунда
type CrashBettor string

const (
	CrashNoBet     CrashBettor = "no_bet"
	CrashBet       CrashBettor = "bet"
	CrashCashedOut CrashBettor = "cashed_out"
)

type CrashState struct {
	Phase   CrashPhase
	RoundID string
	Bet     decimal.Decimal
	Bettor  CrashBettor
	// CrashPoint фиксируется при старте раунда и не пересчитывается
	CrashPoint decimal.Decimal
	Multiplier decimal.Decimal
	// Множитель, по которому игрок вышел (если вышел)
	CashedOutAt decimal.Decimal
	Payout      decimal.Decimal
	Balance     decimal.Decimal
}

func (s *CrashState) Kind() GameKind { return GameCrash }

func (s *CrashState) InFlight() bool { return s.Phase == CrashPhaseRunning }
