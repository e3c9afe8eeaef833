package jsonfile

import (
	"context"

	"promo-budget/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository on a JSON document.
type CampaignRepository struct {
	doc *document[domain.Campaign]
}

// NewCampaignRepository returns a repository backed by the file at path.
// The file is created on first write.
func NewCampaignRepository(path string) *CampaignRepository {
	return &CampaignRepository{doc: newDocument[domain.Campaign](path)}
}

// ListCampaigns returns the campaigns in file order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.doc.load()
}

// CreateCampaign appends c and rewrites the document.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.doc.update(func(campaigns []domain.Campaign) []domain.Campaign {
		return append(campaigns, c)
	})
}

// SaveCampaigns replaces the whole document with campaigns.
func (r *CampaignRepository) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.doc.store(campaigns)
}
