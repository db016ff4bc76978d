package crash

import (
	"context"
	"log"

	"minigames_backend/internal/model"
)

// Tick продвигает все идущие раунды на один шаг множителя.
// Вызывается драйвером времени с периодом CrashTickInterval
func (s *serv) Tick(ctx context.Context) {
	for _, userID := range s.stateRepo.RunningCrashUsers() {
		s.tickUser(ctx, userID)
	}
}

func (s *serv) tickUser(ctx context.Context, userID int) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.CrashPhaseRunning {
		return
	}

	state.Multiplier = state.Multiplier.Add(s.gamesCfg.CrashTickStep())

	if state.Multiplier.GreaterThanOrEqual(state.CrashPoint) {
		state.Multiplier = state.CrashPoint
		state.Phase = model.CrashPhaseCrashed

		// История пишется по факту краша независимо от исхода игрока
		if err := s.historyRepo.PushCrashPoint(ctx, userID, state.CrashPoint, s.gamesCfg.CrashHistorySize()); err != nil {
			log.Printf("failed to push crash history for user %d: %v", userID, err)
		}

		s.send(userID, Frame{
			Type:       frameCrash,
			RoundID:    state.RoundID,
			Multiplier: state.Multiplier.StringFixed(2),
			CrashPoint: state.CrashPoint.StringFixed(2),
		})
		return
	}

	s.send(userID, Frame{
		Type:       frameTick,
		RoundID:    state.RoundID,
		Multiplier: state.Multiplier.StringFixed(2),
	})
}
