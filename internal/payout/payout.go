package payout

import (
	"math"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Чистые функции расчета множителей и выплат.
// Предусловия (валидность порога, количества мин и т.п.) проверяют сервисы

const diceSides = 6

var (
	one        = decimal.NewFromInt(1)
	crashFloor = decimal.RequireFromString("1.01")
)

// DiceWinProbability - вероятность выигрыша для заданного порога и направления.
// Ноль для threshold=6 + over: такая ставка отклоняется до расчета множителя
func DiceWinProbability(threshold int, direction model.DiceDirection) decimal.Decimal {
	sides := decimal.NewFromInt(diceSides)
	if direction == model.DiceOver {
		return decimal.NewFromInt(int64(diceSides - threshold)).Div(sides)
	}
	return decimal.NewFromInt(int64(threshold)).Div(sides)
}

// DiceMultiplier = targetRTP / winProbability, округление до 2 знаков.
// Предусловие: вероятность выигрыша ненулевая
func DiceMultiplier(targetRTP decimal.Decimal, threshold int, direction model.DiceDirection) decimal.Decimal {
	return targetRTP.Div(DiceWinProbability(threshold, direction)).Round(2)
}

// MinesStep - инкрементальный пересчет множителя после k-го безопасного открытия:
// prev * (S-k+1)/(S-k), где S - число безопасных клеток.
// Шаг определен для k < S: открытие последней безопасной клетки
// закрывает поле и множитель не меняет
func MinesStep(prev decimal.Decimal, safeSpots, revealed int) decimal.Decimal {
	if revealed >= safeSpots {
		return prev
	}
	return prev.
		Mul(decimal.NewFromInt(int64(safeSpots - revealed + 1))).
		Div(decimal.NewFromInt(int64(safeSpots - revealed)))
}

// MinesMultiplierAt - полный пересчет множителя с нуля (для сверки и тестов)
func MinesMultiplierAt(gridSize, mineCount, revealed int) decimal.Decimal {
	mult := one
	safeSpots := gridSize - mineCount
	for k := 1; k <= revealed; k++ {
		mult = MinesStep(mult, safeSpots, k)
	}
	return mult
}

// CrashPoint - точка краха по розыгрышу u из [0,1):
// max(1.01, (1/u)^0.5). Тяжелый хвост, смещенный к низким множителям
func CrashPoint(u float64) decimal.Decimal {
	if u <= 0 {
		return crashFloor
	}
	point := decimal.NewFromFloat(math.Sqrt(1 / u)).RoundDown(2)
	if point.LessThan(crashFloor) {
		return crashFloor
	}
	return point
}

// BlackjackMultiplier - фиксированная сетка выплат: выигрыш 2x, возврат 1x, проигрыш 0
func BlackjackMultiplier(result model.ResultKind) decimal.Decimal {
	switch result {
	case model.ResultWin:
		return decimal.NewFromInt(2)
	case model.ResultPush:
		return one
	default:
		return decimal.Zero
	}
}

// Payout = ставка * множитель, округление до 2 знаков
func Payout(amount, multiplier decimal.Decimal) decimal.Decimal {
	return amount.Mul(multiplier).Round(2)
}
