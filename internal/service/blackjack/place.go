package blackjack

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Place списывает ставку и раздает начальные руки: по две карты
// игроку и дилеру поочередно. Вторая карта дилера закрыта до его хода
func (s *serv) Place(ctx context.Context, userID int, amount decimal.Decimal) (*model.BlackjackState, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, fmt.Errorf("%w: bet amount must be positive with at most 2 decimals", model.ErrInvalidParameter)
	}
	if amount.GreaterThan(s.gamesCfg.MaxBet()) {
		return nil, fmt.Errorf("%w: bet amount above max bet", model.ErrInvalidParameter)
	}

	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok && current.InFlight() {
		return nil, fmt.Errorf("%w: another round in progress", model.ErrInvalidTransition)
	}

	state := &model.BlackjackState{
		Bet: amount,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.wallet.Debit(txCtx, userID, amount)
		if err != nil {
			return err
		}

		deck := model.NewDeck()
		s.rnd.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})

		// Раздача поочередно: игрок, дилер, игрок, дилер
		state.Player = []model.Card{deck[0], deck[2]}
		state.Dealer = []model.Card{deck[1], deck[3]}
		state.Deck = deck[4:]

		state.PlayerScore = handScore(state.Player)
		// До хода дилера наружу видна только его открытая карта
		state.DealerScore = handScore(state.Dealer[:1])

		state.Phase = model.BlackjackPhasePlayerTurn
		state.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stateRepo.SetActive(userID, state)
	return state, nil
}
