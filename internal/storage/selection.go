package storage

import (
	"sync"

	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
)

// SelectionStorage keeps each user's pending quiz selection in memory.
type SelectionStorage struct {
	mu         sync.RWMutex
	selections map[int64]entities.Selection
}

func NewSelectionStorage() *SelectionStorage {
	return &SelectionStorage{
		selections: make(map[int64]entities.Selection),
	}
}

// Get returns the stored selection or a fresh default one.
func (s *SelectionStorage) Get(userID int64) entities.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sel, ok := s.selections[userID]
	if !ok {
		return entities.NewSelection()
	}
	return sel.Clone()
}

func (s *SelectionStorage) Put(userID int64, sel entities.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[userID] = sel.Clone()
}
