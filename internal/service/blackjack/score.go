package blackjack

import "minigames_backend/internal/model"

// handScore считает очки руки. Тузы идут за 11 и понижаются
// до 1 по одному, пока сумма превышает 21
func handScore(hand []model.Card) int {
	score := 0
	aces := 0
	for _, card := range hand {
		score += card.Value()
		if card.Rank == "A" {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}
