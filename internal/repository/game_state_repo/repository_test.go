package game_state_repo

import (
	"sync"
	"testing"

	"minigames_backend/internal/model"
)

func TestActiveStateLifecycle(t *testing.T) {
	repo := NewGameStateRepository()

	if _, ok := repo.Active(1); ok {
		t.Fatal("fresh repo has active state")
	}

	state := &model.DiceState{Phase: model.DicePhaseResult}
	repo.SetActive(1, state)

	got, ok := repo.Active(1)
	if !ok || got != model.GameState(state) {
		t.Fatal("stored state not returned")
	}

	// Состояния пользователей независимы
	if _, ok := repo.Active(2); ok {
		t.Fatal("state leaked to another user")
	}

	repo.Clear(1)
	if _, ok := repo.Active(1); ok {
		t.Fatal("state survived Clear")
	}
}

func TestRunningCrashUsers(t *testing.T) {
	repo := NewGameStateRepository()

	repo.SetActive(1, &model.CrashState{Phase: model.CrashPhaseRunning})
	repo.SetActive(2, &model.CrashState{Phase: model.CrashPhaseCrashed})
	repo.SetActive(3, &model.DiceState{Phase: model.DicePhaseResult})

	users := repo.RunningCrashUsers()
	if len(users) != 1 || users[0] != 1 {
		t.Fatalf("RunningCrashUsers() = %v, want [1]", users)
	}
}

func TestUserLockSerializes(t *testing.T) {
	repo := NewGameStateRepository()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Lock(1)
			counter++
			repo.Unlock(1)
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("counter = %d, want 100", counter)
	}
}
