package repository

import (
	"fmt"
	"sort"
	"sync"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"
)

// TransactionMemoryRepository keeps simulated transactions in process memory.
//
// Storage model:
//   - key: reference_id
//   - one RWMutex guards the whole map; expected concurrency is low.
//
// Nothing survives a restart.

type TransactionMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.SimulatedTransaction
}

var _ interfaces.ITransactionStore = (*TransactionMemoryRepository)(nil)

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{items: make(map[string]entities.SimulatedTransaction)}
}

// Insert adds a new record. A reference id collision means the caller generated a
// non-unique id, which is a bug.
func (r *TransactionMemoryRepository) Insert(rec entities.SimulatedTransaction) error {
	ref := rec.Transaction.ReferenceID
	if ref == "" {
		return fmt.Errorf("insert transaction: empty reference id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[ref]; exists {
		return fmt.Errorf("insert transaction: reference id %s already stored", ref)
	}
	r.items[ref] = rec
	return nil
}

func (r *TransactionMemoryRepository) Get(referenceID string) (entities.SimulatedTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[referenceID]
	if !ok {
		return entities.SimulatedTransaction{}, entities.NewNotFoundError("transaction " + referenceID + " not found")
	}
	return rec, nil
}

func (r *TransactionMemoryRepository) Update(referenceID string, fn func(rec *entities.SimulatedTransaction)) (entities.SimulatedTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[referenceID]
	if !ok {
		return entities.SimulatedTransaction{}, entities.NewNotFoundError("transaction " + referenceID + " not found")
	}
	fn(&rec)
	r.items[referenceID] = rec
	return rec, nil
}

// List returns every stored record ordered by creation time.
func (r *TransactionMemoryRepository) List() []entities.SimulatedTransaction {
	r.mu.RLock()
	out := make([]entities.SimulatedTransaction, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Transaction.CreatedAt.Before(out[j].Transaction.CreatedAt)
	})
	return out
}

func (r *TransactionMemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]entities.SimulatedTransaction)
}
