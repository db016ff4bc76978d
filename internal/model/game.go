package model

import "github.com/shopspring/decimal"

type GameKind string

const (
	GameDice      GameKind = "dice"
	GameMines     GameKind = "mines"
	GameCrash     GameKind = "crash"
	GameBlackjack GameKind = "blackjack"
)

type ResultKind string

const (
	ResultWin  ResultKind = "win"
	ResultLoss ResultKind = "loss"
	ResultPush ResultKind = "push"
)

// GameState - состояние активной игры пользователя.
// InFlight() = true пока раунд не завершен: пока он true,
// ставки в других играх отклоняются
type GameState interface {
	Kind() GameKind
	InFlight() bool
}

// Outcome - итог завершенного раунда. Считается один раз, далее не меняется
type Outcome struct {
	Result     ResultKind
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
}
