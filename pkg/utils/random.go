package utils

import (
	"math/rand"
	"time"
)

// NewRand создает локальный генератор. seed == 0 означает "случайный сид".
// Возвращает и фактически использованный сид, чтобы его можно было залогировать.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// RandRange возвращает число в диапазоне [min, max] включительно
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}
