package blackjack

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/payout"
)

// Stand передает ход дилеру. Дилер добирает до порога остановки,
// затем руки сравниваются и раздача рассчитывается
func (s *serv) Stand(ctx context.Context, userID int) (*model.BlackjackState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.BlackjackPhasePlayerTurn {
		return nil, fmt.Errorf("%w: not player's turn", model.ErrInvalidTransition)
	}

	state.Phase = model.BlackjackPhaseDealerTurn
	state.DealerScore = handScore(state.Dealer)

	standOn := s.gamesCfg.BlackjackDealerStand()
	for state.DealerScore < standOn {
		if len(state.Deck) == 0 {
			return nil, fmt.Errorf("%w: no cards left", model.ErrDeckExhausted)
		}
		state.Dealer = append(state.Dealer, state.Deck[0])
		state.Deck = state.Deck[1:]
		state.DealerScore = handScore(state.Dealer)
	}

	state.Result = compare(state.PlayerScore, state.DealerScore)
	multiplier := payout.BlackjackMultiplier(state.Result)
	state.Payout = payout.Payout(state.Bet, multiplier)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance := state.Balance
		if state.Payout.IsPositive() {
			var err error
			balance, err = s.wallet.Credit(txCtx, userID, state.Payout)
			if err != nil {
				return err
			}
		} else {
			var err error
			balance, err = s.wallet.Balance(txCtx, userID)
			if err != nil {
				return err
			}
		}

		state.Phase = model.BlackjackPhaseFinished
		state.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Дилер с перебором проигрывает, иначе выше счет побеждает
func compare(playerScore, dealerScore int) model.ResultKind {
	switch {
	case dealerScore > 21:
		return model.ResultWin
	case playerScore > dealerScore:
		return model.ResultWin
	case playerScore < dealerScore:
		return model.ResultLoss
	default:
		return model.ResultPush
	}
}
