package store

import (
	"errors"

	"github.com/Kaepilz/ghar-joy/internal/models"
)

// === Spins ===

// SpinsAvailable returns the remaining spin count.
func (s *Store) SpinsAvailable() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.SpinsAvailable
}

// GrantSpin adds one spin to the allowance.
func (s *Store) GrantSpin() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.SpinsAvailable++
	s.persistLocked()
	return s.st.SpinsAvailable
}

// UseSpin consumes one spin. The counter floors at zero; using a spin at
// zero is an error, not a negative balance.
func (s *Store) UseSpin() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.SpinsAvailable <= 0 {
		return 0, ErrNoSpinsLeft
	}
	s.st.SpinsAvailable--
	s.persistLocked()
	return s.st.SpinsAvailable, nil
}

// AddSpinResult records an unclaimed spin outcome.
func (s *Store) AddSpinResult(r models.SpinResult) models.SpinResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.newID()
	}
	stored := r
	s.st.SpinResults = append(s.st.SpinResults, &stored)
	s.persistLocked()
	return stored
}

// SpinResults returns all recorded spin outcomes.
func (s *Store) SpinResults() []models.SpinResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SpinResult, 0, len(s.st.SpinResults))
	for _, r := range s.st.SpinResults {
		out = append(out, *r)
	}
	return out
}

// ClaimSpinResult flips a result to claimed. The transition is one-way;
// claiming twice is a no-op.
func (s *Store) ClaimSpinResult(id string) (models.SpinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.st.SpinResults {
		if r.ID == id {
			if !r.Claimed {
				r.Claimed = true
				s.persistLocked()
			}
			return *r, nil
		}
	}
	return models.SpinResult{}, errors.New("store: spin result not found")
}

// === Bot chat logs ===

// ChatLog names one of the two independent conversation logs.
type ChatLog string

const (
	MentorChat  ChatLog = "mentor"
	BargainChat ChatLog = "bargain"
)

func (s *Store) chatLocked(log ChatLog) *[]*models.ChatMessage {
	if log == BargainChat {
		return &s.st.BargainChat
	}
	return &s.st.MentorChat
}

// AppendChatMessage appends to one of the bot conversation logs.
func (s *Store) AppendChatMessage(log ChatLog, m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = s.newID()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = s.now()
	}
	stored := m
	target := s.chatLocked(log)
	*target = append(*target, &stored)
	s.persistLocked()
	return stored
}

// ChatMessages returns a conversation log in order.
func (s *Store) ChatMessages(log ChatLog) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := *s.chatLocked(log)
	out := make([]models.ChatMessage, 0, len(src))
	for _, m := range src {
		out = append(out, *m)
	}
	return out
}

// ClearChat empties a conversation log.
func (s *Store) ClearChat(log ChatLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.chatLocked(log) = nil
	s.persistLocked()
}
