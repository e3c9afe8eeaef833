package domain

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

// GlobalRegion is the discounts key used when a campaign has no entry for
// the transaction region.
const GlobalRegion = "global"

// ErrIncompleteData is returned when a required input field is missing.
var ErrIncompleteData = errors.New("incomplete data")

// ErrNegativeAmount is returned when a budget or discount is below zero.
var ErrNegativeAmount = errors.New("negative amount")

func init() {
	// Budgets and discounts travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Campaign represents a promotional campaign. RemainingBudget starts at
// InitialBudget and is only ever decremented by recorded transactions.
type Campaign struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Products        []string                   `json:"products"`
	InitialBudget   decimal.Decimal            `json:"initialBudget"`
	RemainingBudget decimal.Decimal            `json:"remainingBudget"`
	Discounts       map[string]decimal.Decimal `json:"discounts"`
}

// NewCampaign holds the caller supplied fields of a campaign. Products and
// Discounts are nil when absent from the request, which is distinct from an
// empty list or map.
type NewCampaign struct {
	Name          string                     `json:"name"`
	Products      []string                   `json:"products"`
	InitialBudget decimal.Decimal            `json:"initialBudget"`
	Discounts     map[string]decimal.Decimal `json:"discounts"`
}

// Validate reports ErrIncompleteData when a required field is missing or
// zero, and ErrNegativeAmount for a negative budget or discount.
func (n NewCampaign) Validate() error {
	if n.Name == "" || n.Products == nil || n.InitialBudget.IsZero() || n.Discounts == nil {
		return ErrIncompleteData
	}
	if n.InitialBudget.IsNegative() {
		return ErrNegativeAmount
	}
	for _, d := range n.Discounts {
		if d.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}

// Covers reports whether productID is one of the campaign products.
func (c *Campaign) Covers(productID string) bool {
	return slices.Contains(c.Products, productID)
}

// DiscountFor returns the discount for region, falling back to the global
// entry and then to zero. A zero region entry also falls through.
func (c *Campaign) DiscountFor(region string) decimal.Decimal {
	if d, ok := c.Discounts[region]; ok && !d.IsZero() {
		return d
	}
	if d, ok := c.Discounts[GlobalRegion]; ok && !d.IsZero() {
		return d
	}
	return decimal.Zero
}
