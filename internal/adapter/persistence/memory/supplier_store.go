package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"
)

var ErrSupplierAlreadyExists = errors.New("supplier already exists")

type SupplierStore struct {
	mutex     sync.RWMutex
	suppliers map[string]entities.Supplier
}

var _ interfaces.ISupplierDirectory = (*SupplierStore)(nil)

func NewSupplierStore(seed ...entities.Supplier) *SupplierStore {
	s := &SupplierStore{suppliers: make(map[string]entities.Supplier, len(seed))}
	for _, sup := range seed {
		sup.TaxID = entities.NormalizeTaxID(sup.TaxID)
		s.suppliers[sup.ID] = sup
	}
	return s
}

func (s *SupplierStore) Create(_ context.Context, sup entities.Supplier) (entities.Supplier, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.suppliers[sup.ID]; exists {
		return entities.Supplier{}, ErrSupplierAlreadyExists
	}
	sup.TaxID = entities.NormalizeTaxID(sup.TaxID)
	s.suppliers[sup.ID] = sup
	return sup, nil
}

func (s *SupplierStore) GetByID(_ context.Context, id string) (entities.Supplier, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.suppliers[id], nil
}

func (s *SupplierStore) GetByTaxID(_ context.Context, taxID string) (entities.Supplier, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, sup := range s.suppliers {
		if sup.TaxID == taxID {
			return sup, nil
		}
	}
	return entities.Supplier{}, nil
}

func (s *SupplierStore) List(_ context.Context) ([]entities.Supplier, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]entities.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		out = append(out, sup)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SocialReason < out[j].SocialReason })
	return out, nil
}
