package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source - единственный источник случайности движка.
// Хендлеры его не видят: розыгрыш нельзя подсмотреть до фиксации ставки.
// Точка подмены на криптографический генератор при необходимости
type Source interface {
	// Float64 - равномерное значение в [0,1)
	Float64() float64
	// IntRange - равномерное целое в [lo,hi] включительно
	IntRange(lo, hi int) int
	// Shuffle - перестановка Фишера-Йетса
	Shuffle(n int, swap func(i, j int))
}

type source struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// New - общий источник, безопасный для конкурентного использования
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded - детерминированный источник для тестов
func NewSeeded(seed int64) Source {
	return &source{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (s *source) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rnd.Float64()
}

func (s *source) IntRange(lo, hi int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return lo + s.rnd.Intn(hi-lo+1)
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.rnd.Shuffle(n, swap)
}
