package blackjack

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
)

// Hit добирает карту игроку. Перебор сразу завершает раздачу поражением
func (s *serv) Hit(ctx context.Context, userID int) (*model.BlackjackState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.BlackjackPhasePlayerTurn {
		return nil, fmt.Errorf("%w: not player's turn", model.ErrInvalidTransition)
	}

	if len(state.Deck) == 0 {
		return nil, fmt.Errorf("%w: no cards left", model.ErrDeckExhausted)
	}

	state.Player = append(state.Player, state.Deck[0])
	state.Deck = state.Deck[1:]
	state.PlayerScore = handScore(state.Player)

	if state.PlayerScore > 21 {
		state.Phase = model.BlackjackPhaseFinished
		state.Result = model.ResultLoss
		// Рука дилера раскрывается при завершении раздачи
		state.DealerScore = handScore(state.Dealer)
	}

	return state, nil
}
