package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppliedCampaign records a discount deducted from a campaign budget.
type AppliedCampaign struct {
	CampaignID string          `json:"id"`
	Discount   decimal.Decimal `json:"discount"`
}

// Transaction is an immutable entry of the transaction log.
type Transaction struct {
	OrderID          string            `json:"orderId"`
	Timestamp        time.Time         `json:"timestamp"`
	Region           string            `json:"region"`
	Products         []string          `json:"products"`
	AppliedCampaigns []AppliedCampaign `json:"appliedCampaigns"`
}

// NewTransaction holds the caller supplied fields of a transaction.
type NewTransaction struct {
	OrderID  string   `json:"orderId"`
	Region   string   `json:"region"`
	Products []string `json:"products"`
}

// Validate reports ErrIncompleteData when a required field is missing.
func (n NewTransaction) Validate() error {
	if n.OrderID == "" || n.Region == "" || n.Products == nil {
		return ErrIncompleteData
	}
	return nil
}

// Deduction is the outcome of matching a single product against the
// campaign list.
type Deduction struct {
	ProductID string
	// Campaign is nil when no campaign covers the product.
	Campaign *Campaign
	// Exhausted is set when the campaign had no budget left.
	Exhausted bool
	Applied   bool
	Discount  decimal.Decimal
}

// ApplyDiscounts deducts region discounts from campaigns in place, one
// product at a time. Each product binds to the first campaign covering it.
// A campaign with no budget left is ignored, and a discount larger than the
// remaining budget is skipped without partial deduction. Negative discounts
// are never applied.
func ApplyDiscounts(campaigns []Campaign, region string, products []string) ([]AppliedCampaign, []Deduction) {
	applied := make([]AppliedCampaign, 0, len(products))
	deductions := make([]Deduction, 0, len(products))
	for _, pid := range products {
		d := Deduction{ProductID: pid}
		if i := firstCovering(campaigns, pid); i >= 0 {
			c := &campaigns[i]
			d.Campaign = c
			if !c.RemainingBudget.IsPositive() {
				d.Exhausted = true
			} else {
				d.Discount = c.DiscountFor(region)
				if !d.Discount.IsNegative() && c.RemainingBudget.GreaterThanOrEqual(d.Discount) {
					c.RemainingBudget = c.RemainingBudget.Sub(d.Discount)
					d.Applied = true
					applied = append(applied, AppliedCampaign{CampaignID: c.ID, Discount: d.Discount})
				}
			}
		}
		deductions = append(deductions, d)
	}
	return applied, deductions
}

func firstCovering(campaigns []Campaign, productID string) int {
	for i := range campaigns {
		if campaigns[i].Covers(productID) {
			return i
		}
	}
	return -1
}
