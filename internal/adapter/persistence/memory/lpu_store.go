// Package memory holds in-process stores with the same conditional-write contract as the DynamoDB
// repositories. Used for LPU_STORE=memory and in tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"
)

var ErrLPUAlreadyExists = errors.New("lpu already exists")

type LPUStore struct {
	mutex sync.RWMutex
	lpus  map[string]entities.LPU
}

var _ interfaces.ILPURepository = (*LPUStore)(nil)

func NewLPUStore() *LPUStore {
	return &LPUStore{lpus: make(map[string]entities.LPU)}
}

func (s *LPUStore) Create(_ context.Context, l entities.LPU) (entities.LPU, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.lpus[l.ID]; exists {
		return entities.LPU{}, ErrLPUAlreadyExists
	}
	stored := normalize(l)
	s.lpus[l.ID] = stored
	return stored.Clone(), nil
}

func (s *LPUStore) GetByID(_ context.Context, id string) (entities.LPU, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	l, ok := s.lpus[id]
	if !ok {
		return entities.LPU{}, nil
	}
	return l.Clone(), nil
}

func (s *LPUStore) GetByQuoteToken(_ context.Context, token string) (entities.LPU, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if token == "" {
		return entities.LPU{}, nil
	}
	for _, l := range s.lpus {
		if l.QuoteToken == token {
			return l.Clone(), nil
		}
	}
	return entities.LPU{}, nil
}

func (s *LPUStore) List(_ context.Context, filter interfaces.LPUFilter) ([]entities.LPU, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]entities.LPU, 0, len(s.lpus))
	for _, l := range s.lpus {
		if filter.WorkID != "" && l.WorkID != filter.WorkID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LPUStore) Save(_ context.Context, l entities.LPU) (entities.LPU, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.lpus[l.ID]
	if !ok || current.Version != l.Version {
		return entities.LPU{}, interfaces.ErrVersionConflict
	}
	stored := normalize(l)
	stored.Version = current.Version + 1
	s.lpus[l.ID] = stored
	return stored.Clone(), nil
}

func (s *LPUStore) UpdateFields(_ context.Context, id string, upd interfaces.FieldUpdate) (entities.LPU, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.lpus[id]
	if !ok {
		return entities.LPU{}, nil
	}
	if upd.RequireStatus != "" && current.Status != upd.RequireStatus {
		return entities.LPU{}, interfaces.ErrVersionConflict
	}
	next := current.Clone()
	for k, v := range upd.Prices {
		next.Prices[k] = v
	}
	for k, v := range upd.Quantities {
		next.Quantities[k] = v
	}
	next.Version = current.Version + 1
	s.lpus[id] = next
	return next.Clone(), nil
}

func (s *LPUStore) Delete(_ context.Context, id string, expectedVersion int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.lpus[id]
	if !ok || current.Version != expectedVersion {
		return interfaces.ErrVersionConflict
	}
	delete(s.lpus, id)
	return nil
}

func normalize(l entities.LPU) entities.LPU {
	out := l.Clone()
	if out.History == nil {
		out.History = []entities.Revision{}
	}
	if out.InvitedSuppliers == nil {
		out.InvitedSuppliers = []entities.InvitedSupplier{}
	}
	return out
}
