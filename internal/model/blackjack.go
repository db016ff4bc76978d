package model

import "github.com/shopspring/decimal"

type BlackjackPhase string

const (
	BlackjackPhaseBetting    BlackjackPhase = "betting"
	BlackjackPhasePlayerTurn BlackjackPhase = "player_turn"
	BlackjackPhaseDealerTurn BlackjackPhase = "dealer_turn"
	BlackjackPhaseFinished   BlackjackPhase = "finished"
)

var (
	CardSuits = []string{"♠", "♥", "♦", "♣"}
	CardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

type Card struct {
	Suit string
	Rank string
}

// Value - номинал карты. Туз считается за 11, понижение до 1 делает подсчет очков
func (c Card) Value() int {
	switch c.Rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	default:
		return int(c.Rank[0] - '0')
	}
}

// NewDeck - упорядоченная колода из 52 уникальных карт
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range CardSuits {
		for _, rank := range CardRanks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

type BlackjackState struct {
	Phase       BlackjackPhase
	Bet         decimal.Decimal
	Deck        []Card
	Player      []Card
	Dealer      []Card
	PlayerScore int
	DealerScore int
	Result      ResultKind
	Payout      decimal.Decimal
	Balance     decimal.Decimal
}

func (s *BlackjackState) Kind() GameKind { return GameBlackjack }

func (s *BlackjackState) InFlight() bool {
	return s.Phase == BlackjackPhasePlayerTurn || s.Phase == BlackjackPhaseDealerTurn
}
