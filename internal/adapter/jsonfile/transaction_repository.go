package jsonfile

import (
	"context"

	"promo-budget/internal/core/domain"
)

// TransactionRepository implements port.TransactionRepository on a JSON
// document.
type TransactionRepository struct {
	doc *document[domain.Transaction]
}

// NewTransactionRepository returns a repository backed by the file at path.
func NewTransactionRepository(path string) *TransactionRepository {
	return &TransactionRepository{doc: newDocument[domain.Transaction](path)}
}

// AppendTransaction adds tx at the end of the log.
func (r *TransactionRepository) AppendTransaction(ctx context.Context, tx domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.doc.update(func(txs []domain.Transaction) []domain.Transaction {
		return append(txs, tx)
	})
}

// ListTransactions returns the whole log.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.doc.load()
}
