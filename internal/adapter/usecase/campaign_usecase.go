package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"promo-budget/internal/core/domain"
	"promo-budget/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a campaign
// repository.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListCampaigns returns every campaign. A nil result from the repository is
// normalised to an empty slice so callers always encode a JSON array.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// CreateCampaign stores a new campaign with a generated id and a full
// remaining budget.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in domain.NewCampaign) (*domain.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c := domain.Campaign{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Products:        in.Products,
		InitialBudget:   in.InitialBudget,
		RemainingBudget: in.InitialBudget,
		Discounts:       in.Discounts,
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}
