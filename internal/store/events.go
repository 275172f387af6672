package store

import (
	"time"

	"kirana_back_end/internal/models"
)

// AddSuspiciousEvent ajoute un événement au journal (append-only, pas de
// déduplication). Le score vient du Scorer injecté.
func (s *Store) AddSuspiciousEvent(productID, eventType string) models.SuspiciousEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.SuspiciousEvent{
		ID:        s.newID("EVT", s.eventIDTaken),
		ProductID: productID,
		Type:      eventType,
		Score:     s.scorer.Score(productID, eventType),
		Timestamp: time.Now(),
	}
	s.suspiciousEvents = append(s.suspiciousEvents, event)
	return event
}

func (s *Store) eventIDTaken(id string) bool {
	for _, e := range s.suspiciousEvents {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) SuspiciousEvents() []models.SuspiciousEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SuspiciousEvent, len(s.suspiciousEvents))
	copy(out, s.suspiciousEvents)
	return out
}
