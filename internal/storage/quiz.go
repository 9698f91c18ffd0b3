package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// QuizStorage provides in-memory storage for active quiz sessions by user ID.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session as the active session of its user, replacing any previous one.
func (s *QuizStorage) Store(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
}

// Get retrieves the active session of a user.
func (s *QuizStorage) Get(userID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// Delete removes the session of a user.
func (s *QuizStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// DeleteIdle removes and returns sessions not updated since before.
func (s *QuizStorage) DeleteIdle(before time.Time) []*entities.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []*entities.QuizSession
	for userID, session := range s.sessions {
		if session.UpdatedAt.Before(before) {
			removed = append(removed, session)
			delete(s.sessions, userID)
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (s *QuizStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
