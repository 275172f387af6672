package anomaly

import (
	"math/rand"
	"sync"
)

// Scorer évalue le risque d'un événement suspect. Le score doit rester
// dans [0, 99]. L'implémentation par défaut est un tirage uniforme —
// c'est un placeholder en attendant un vrai détecteur d'anomalies.
type Scorer interface {
	Score(productID, eventType string) int
}

// RandomScorer — score uniforme dans [0, 99]
type RandomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomScorer(seed int64) *RandomScorer {
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomScorer) Score(productID, eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(100)
}
