package model

import "github.com/shopspring/decimal"

type DicePhase string

const (
	DicePhaseIdle    DicePhase = "idle"
	DicePhaseRolling DicePhase = "rolling"
	DicePhaseResult  DicePhase = "result"
)

type DiceDirection string

const (
	DiceOver  DiceDirection = "over"
	DiceUnder DiceDirection = "under"
)

type DiceBet struct {
	Amount    decimal.Decimal
	Threshold int
	Direction DiceDirection
}

type DiceState struct {
	Phase      DicePhase
	Bet        DiceBet
	Roll       int
	Win        bool
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	Balance    decimal.Decimal
}

func (s *DiceState) Kind() GameKind { return GameDice }

// Бросок разыгрывается в рамках одной команды, между командами раунд не висит
func (s *DiceState) InFlight() bool { return false }
