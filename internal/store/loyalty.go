package store

// AddLoyaltyPoints crédite le solde de la session. Les deltas négatifs
// passent par la variante gardée : le solde ne descend jamais sous zéro.
func (s *Store) AddLoyaltyPoints(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if points < 0 {
		s.useLoyaltyPointsLocked(-points)
		return
	}
	s.loyaltyPoints += points
}

// UseLoyaltyPoints — variante gardée : débite uniquement si points ≤ solde,
// sinon état inchangé et échec signalé.
func (s *Store) UseLoyaltyPoints(points int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useLoyaltyPointsLocked(points)
}

func (s *Store) useLoyaltyPointsLocked(points int) bool {
	if points < 0 || points > s.loyaltyPoints {
		return false
	}
	s.loyaltyPoints -= points
	return true
}

func (s *Store) LoyaltyBalance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loyaltyPoints
}
