package interfaces

import (
	"momo_gateway/internal/domain/entities"
)

//go:generate mockgen -source=transaction_store_interface.go -destination=mocks/transaction_store_mock.go -package=mock_interfaces

// ITransactionStore keeps simulated transactions keyed by reference id.
//
// Update runs fn while holding the record exclusively, so a read-modify-write on one
// reference id is linearizable.
type ITransactionStore interface {
	Insert(rec entities.SimulatedTransaction) error
	Get(referenceID string) (entities.SimulatedTransaction, error)
	Update(referenceID string, fn func(rec *entities.SimulatedTransaction)) (entities.SimulatedTransaction, error)
	List() []entities.SimulatedTransaction
	Reset()
}
