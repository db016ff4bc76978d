package model

import "github.com/shopspring/decimal"

type MinesPhase string

const (
	MinesPhaseIdle    MinesPhase = "idle"
	MinesPhasePlaying MinesPhase = "playing"
	MinesPhaseWon     MinesPhase = "won"
	MinesPhaseLost    MinesPhase = "lost"
)

type MinesBet struct {
	Amount    decimal.Decimal
	MineCount int
}

type MinesState struct {
	Phase         MinesPhase
	Bet           MinesBet
	GridSize      int
	Mines         map[int]bool
	Revealed      map[int]bool
	RevealedCount int
	Multiplier    decimal.Decimal
	Payout        decimal.Decimal
	Balance       decimal.Decimal
}

func (s *MinesState) Kind() GameKind { return GameMines }

func (s *MinesState) InFlight() bool { return s.Phase == MinesPhasePlaying }

// SafeSpots - количество безопасных клеток на поле
func (s *MinesState) SafeSpots() int { return s.GridSize - s.Bet.MineCount }
