package model

import "errors"

// Ошибки движка. Хендлеры сопоставляют их с HTTP статусами через errors.Is
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrNoActiveGame        = errors.New("no active game")
	// ErrDeckExhausted - нарушение предусловия: одной колоды хватает на раунд
	ErrDeckExhausted = errors.New("deck exhausted")
)
