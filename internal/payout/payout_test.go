package payout

import (
	"testing"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

var rtp = decimal.RequireFromString("0.95")

func TestDiceWinProbability(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		direction model.DiceDirection
		want      string
	}{
		{"over 3", 3, model.DiceOver, "0.5"},
		{"under 3", 3, model.DiceUnder, "0.5"},
		{"under 1", 1, model.DiceUnder, "0.1666666666666667"},
		{"over 5", 5, model.DiceOver, "0.1666666666666667"},
		{"over 6 impossible", 6, model.DiceOver, "0"},
		{"under 6 sure win", 6, model.DiceUnder, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiceWinProbability(tt.threshold, tt.direction)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("DiceWinProbability(%d, %s) = %s, want %s", tt.threshold, tt.direction, got, want)
			}
		})
	}
}

func TestDiceMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		direction model.DiceDirection
		want      string
	}{
		{"over 3", 3, model.DiceOver, "1.90"},
		{"under 3", 3, model.DiceUnder, "1.90"},
		{"under 1", 1, model.DiceUnder, "5.70"},
		{"over 5", 5, model.DiceOver, "5.70"},
		{"under 6", 6, model.DiceUnder, "0.95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiceMultiplier(rtp, tt.threshold, tt.direction)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("DiceMultiplier(%d, %s) = %s, want %s", tt.threshold, tt.direction, got, want)
			}
		})
	}
}

func TestMinesMultiplierAt(t *testing.T) {
	// 3 мины на поле 25: после первого открытия 22/21, после второго 22/20
	got := MinesMultiplierAt(25, 3, 1)
	want := decimal.NewFromInt(22).Div(decimal.NewFromInt(21))
	if !got.Equal(want) {
		t.Errorf("MinesMultiplierAt(25, 3, 1) = %s, want %s", got, want)
	}

	got = MinesMultiplierAt(25, 3, 2)
	if got.Round(2).String() != "1.1" {
		t.Errorf("MinesMultiplierAt(25, 3, 2) = %s, want 1.10 after rounding", got)
	}
}

func TestMinesMultiplierFullClear(t *testing.T) {
	// Открытие последней безопасной клетки не меняет множитель
	beforeLast := MinesMultiplierAt(25, 3, 21)
	full := MinesMultiplierAt(25, 3, 22)
	if !full.Equal(beforeLast) {
		t.Errorf("full clear multiplier = %s, want %s", full, beforeLast)
	}

	// Вырожденный случай: единственная безопасная клетка
	got := MinesMultiplierAt(25, 24, 1)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("MinesMultiplierAt(25, 24, 1) = %s, want 1", got)
	}
}

func TestMinesStepMatchesClosedForm(t *testing.T) {
	// Телескопирование произведения: после k открытий множитель равен S/(S-k)
	safeSpots := 22
	mult := decimal.NewFromInt(1)
	for k := 1; k < safeSpots; k++ {
		mult = MinesStep(mult, safeSpots, k)
		want := decimal.NewFromInt(int64(safeSpots)).Div(decimal.NewFromInt(int64(safeSpots - k)))
		if mult.Sub(want).Abs().GreaterThan(decimal.RequireFromString("0.0000000001")) {
			t.Fatalf("after %d reveals multiplier = %s, want %s", k, mult, want)
		}
	}
}

func TestCrashPoint(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want string
	}{
		{"u=1 floors", 1, "1.01"},
		{"u close to 1 floors", 0.999, "1.01"},
		{"u=0.25 doubles", 0.25, "2"},
		{"u=0.0625 quadruples", 0.0625, "4"},
		{"u=0 floors", 0, "1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrashPoint(tt.u)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("CrashPoint(%v) = %s, want %s", tt.u, got, want)
			}
		})
	}
}

func TestCrashPointNeverBelowFloor(t *testing.T) {
	for u := 0.0; u < 1; u += 0.001 {
		if CrashPoint(u).LessThan(crashFloor) {
			t.Fatalf("CrashPoint(%v) = %s below floor", u, CrashPoint(u))
		}
	}
}

func TestBlackjackMultiplier(t *testing.T) {
	tests := []struct {
		result model.ResultKind
		want   string
	}{
		{model.ResultWin, "2"},
		{model.ResultPush, "1"},
		{model.ResultLoss, "0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.result), func(t *testing.T) {
			got := BlackjackMultiplier(tt.result)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("BlackjackMultiplier(%s) = %s, want %s", tt.result, got, tt.want)
			}
		})
	}
}

func TestPayout(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		multiplier string
		want       string
	}{
		{"dice even", "10.00", "1.90", "19.00"},
		{"rounding", "0.10", "1.05", "0.11"},
		{"loss", "25.00", "0", "0.00"},
		{"push", "25.00", "1", "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Payout(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.multiplier))
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Payout(%s, %s) = %s, want %s", tt.amount, tt.multiplier, got, want)
			}
		})
	}
}
