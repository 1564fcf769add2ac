// internal/utils/prng.go
package utils

import (
	"go-fireball/internal/config"
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел Go, чтобы
// при необходимости можно было зафиксировать сид на всю игру.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// FireCooldown возвращает время перезарядки башни в секундах, [0.4, 1.2).
func (s *PRNGService) FireCooldown() float64 {
	return config.FireCooldownMin + float64(s.Intn(config.FireCooldownSpanMs))/1000.0
}
