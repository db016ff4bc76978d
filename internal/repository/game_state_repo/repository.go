package game_state_repo

import (
	"sync"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
)

// Реализация репозитория активных игровых состояний в памяти.
// Состояния живут в рамках процесса; баланс персистентен и живет в БД
type StateRepo struct {
	mtx    sync.RWMutex
	states map[int]model.GameState
	locks  map[int]*sync.Mutex
}

func NewGameStateRepository() repository.GameStateRepository {
	return &StateRepo{
		states: make(map[int]model.GameState),
		locks:  make(map[int]*sync.Mutex),
	}
}

func (r *StateRepo) userLock(userID int) *sync.Mutex {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

// Lock - захват пользовательской блокировки. Одна команда на пользователя за раз
func (r *StateRepo) Lock(userID int) {
	r.userLock(userID).Lock()
}

func (r *StateRepo) Unlock(userID int) {
	r.userLock(userID).Unlock()
}

func (r *StateRepo) Active(userID int) (model.GameState, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state, ok := r.states[userID]
	return state, ok
}

func (r *StateRepo) SetActive(userID int, state model.GameState) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.states[userID] = state
}

func (r *StateRepo) Clear(userID int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.states, userID)
}

// RunningCrashUsers - пользователи с идущим раундом crash
func (r *StateRepo) RunningCrashUsers() []int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var users []int
	for userID, state := range r.states {
		crash, ok := state.(*model.CrashState)
		if ok && crash.Phase == model.CrashPhaseRunning {
			users = append(users, userID)
		}
	}
	return users
}
