package blackjack

import (
	"testing"

	"minigames_backend/internal/model"
)

func card(rank string) model.Card {
	return model.Card{Suit: "♠", Rank: rank}
}

func TestHandScore(t *testing.T) {
	tests := []struct {
		name string
		hand []model.Card
		want int
	}{
		{"ace king", []model.Card{card("A"), card("K")}, 21},
		{"two aces and nine", []model.Card{card("A"), card("A"), card("9")}, 21},
		{"face cards", []model.Card{card("K"), card("Q")}, 20},
		{"ten and jack", []model.Card{card("10"), card("J")}, 20},
		{"ace alone", []model.Card{card("A")}, 11},
		{"ace demoted", []model.Card{card("A"), card("7"), card("9")}, 17},
		{"all aces", []model.Card{card("A"), card("A"), card("A"), card("A")}, 14},
		{"bust", []model.Card{card("K"), card("Q"), card("5")}, 25},
		{"numeric", []model.Card{card("2"), card("7")}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handScore(tt.hand); got != tt.want {
				t.Errorf("handScore(%v) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name          string
		player, deal  int
		want          model.ResultKind
	}{
		{"dealer bust", 18, 22, model.ResultWin},
		{"player ahead", 20, 18, model.ResultWin},
		{"dealer ahead", 17, 19, model.ResultLoss},
		{"tie", 19, 19, model.ResultPush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compare(tt.player, tt.deal); got != tt.want {
				t.Errorf("compare(%d, %d) = %s, want %s", tt.player, tt.deal, got, tt.want)
			}
		})
	}
}

func TestNewDeck(t *testing.T) {
	deck := model.NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}
	seen := make(map[model.Card]bool, 52)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}
