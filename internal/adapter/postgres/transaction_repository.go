package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-budget/internal/core/domain"
)

// TransactionRepository implements port.TransactionRepository using
// pgxpool for PostgreSQL.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository returns a new repository instance.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// AppendTransaction inserts a transaction row.
func (r *TransactionRepository) AppendTransaction(ctx context.Context, tx domain.Transaction) error {
	applied := tx.AppliedCampaigns
	if applied == nil {
		applied = []domain.AppliedCampaign{}
	}
	appliedJSON, err := json.Marshal(applied)
	if err != nil {
		return err
	}
	products := tx.Products
	if products == nil {
		products = []string{}
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO transactions (order_id, created_at, region, products, applied_campaigns)
VALUES ($1, $2, $3, $4, $5)`, tx.OrderID, tx.Timestamp, tx.Region, products, appliedJSON)
	return err
}

// ListTransactions returns the log ordered by insertion.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT order_id, created_at, region, products, applied_campaigns FROM transactions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var (
			tx         domain.Transaction
			appliedRaw []byte
		)
		if err := row.Scan(&tx.OrderID, &tx.Timestamp, &tx.Region, &tx.Products, &appliedRaw); err != nil {
			return tx, err
		}
		if err := json.Unmarshal(appliedRaw, &tx.AppliedCampaigns); err != nil {
			return tx, fmt.Errorf("transaction %s applied campaigns: %w", tx.OrderID, err)
		}
		tx.Timestamp = tx.Timestamp.UTC()
		return tx, nil
	})
}
