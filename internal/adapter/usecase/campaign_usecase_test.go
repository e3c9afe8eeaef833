package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-budget/internal/core/domain"
	"promo-budget/internal/core/port/mocks"
)

func newCampaignInput() domain.NewCampaign {
	return domain.NewCampaign{
		Name:          "summer",
		Products:      []string{"p1", "p2"},
		InitialBudget: decimal.NewFromInt(100),
		Discounts: map[string]decimal.Decimal{
			"north":             decimal.NewFromInt(5),
			domain.GlobalRegion: decimal.NewFromInt(2),
		},
	}
}

// TestCreateCampaign ensures a stored campaign starts with a full budget
// and a fresh id on every call.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(nil).
		Times(2)

	svc := NewCampaignUseCase(repo)

	first, err := svc.CreateCampaign(context.Background(), newCampaignInput())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	second, err := svc.CreateCampaign(context.Background(), newCampaignInput())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.RemainingBudget.Equal(first.InitialBudget))
}

// TestCreateCampaignIncomplete ensures nothing is stored for a missing
// field.
func TestCreateCampaignIncomplete(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo)

	in := newCampaignInput()
	in.Discounts = nil

	_, err := svc.CreateCampaign(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrIncompleteData)
	repo.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestCreateCampaignStorageError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("read-only file system")
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(boom)

	_, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), newCampaignInput())
	require.ErrorIs(t, err, boom)
}

func TestListCampaignsEmpty(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	list, err := NewCampaignUseCase(repo).ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
