package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"promo-budget/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns campaigns in insertion order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT
            id,
            name,
            products,
            initial_budget::text,
            remaining_budget::text,
            discounts
        FROM campaigns
        ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c                  domain.Campaign
			initial, remaining string
			discountsRaw       []byte
		)
		if err := row.Scan(&c.ID, &c.Name, &c.Products, &initial, &remaining, &discountsRaw); err != nil {
			return c, err
		}
		return c, decodeCampaign(&c, initial, remaining, discountsRaw)
	})
}

func decodeCampaign(c *domain.Campaign, initial, remaining string, discountsRaw []byte) error {
	var err error
	if c.InitialBudget, err = decimal.NewFromString(initial); err != nil {
		return fmt.Errorf("campaign %s initial budget: %w", c.ID, err)
	}
	if c.RemainingBudget, err = decimal.NewFromString(remaining); err != nil {
		return fmt.Errorf("campaign %s remaining budget: %w", c.ID, err)
	}
	if err = json.Unmarshal(discountsRaw, &c.Discounts); err != nil {
		return fmt.Errorf("campaign %s discounts: %w", c.ID, err)
	}
	return nil
}

// CreateCampaign inserts a campaign row.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	discounts, err := json.Marshal(c.Discounts)
	if err != nil {
		return err
	}
	products := c.Products
	if products == nil {
		products = []string{}
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns (id, name, products, initial_budget, remaining_budget, discounts)
VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6)`,
		c.ID, c.Name, products, c.InitialBudget.String(), c.RemainingBudget.String(), discounts)
	return err
}

// SaveCampaigns writes back the remaining budget of every campaign in one
// transaction. The other columns are immutable after creation.
func (r *CampaignRepository) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range campaigns {
		batch.Queue(`UPDATE campaigns SET remaining_budget = $1::numeric WHERE id = $2`, c.RemainingBudget.String(), c.ID)
	}
	return tx.SendBatch(ctx, batch).Close()
}
