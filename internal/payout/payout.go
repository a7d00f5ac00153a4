// Package payout turns gross sales into the amount owed to a liver and
// aggregates sales for totals and rankings.
package payout

import (
	"fmt"

	"github.com/hance08/liverdesk/internal/model"
	"github.com/shopspring/decimal"
)

const (
	DefaultTaxRate = "0.10"
	DefaultShare   = "0.75"
)

// Calculator backs consumption tax out of a gross amount and applies the
// liver's revenue share.
type Calculator struct {
	taxDivisor decimal.Decimal
	share      decimal.Decimal
}

func NewCalculator(taxRate, share decimal.Decimal) (*Calculator, error) {
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate can't be negative: %s", taxRate)
	}
	if !share.IsPositive() || share.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("share must be greater than 0 and at most 1: %s", share)
	}

	return &Calculator{
		taxDivisor: decimal.NewFromInt(1).Add(taxRate),
		share:      share,
	}, nil
}

// ParseCalculator builds a Calculator from decimal strings such as "0.10".
func ParseCalculator(taxRate, share string) (*Calculator, error) {
	tax, err := decimal.NewFromString(taxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate '%s': %w", taxRate, err)
	}

	sh, err := decimal.NewFromString(share)
	if err != nil {
		return nil, fmt.Errorf("invalid share '%s': %w", share, err)
	}

	return NewCalculator(tax, sh)
}

func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxDivisor.Sub(decimal.NewFromInt(1))
}

func (c *Calculator) Share() decimal.Decimal {
	return c.share
}

// Compute returns round(gross / (1+tax) * share). Exact ties round half away
// from zero. Non-positive input pays nothing.
func (c *Calculator) Compute(gross int64) int64 {
	if gross <= 0 {
		return 0
	}

	// Multiplying first keeps results exact whenever the true value is a
	// terminating decimal, so ties are detected reliably.
	return decimal.NewFromInt(gross).
		Mul(c.share).
		Div(c.taxDivisor).
		Round(0).
		IntPart()
}

// SumPayout adds up the payout of every sale given, withdrawn or not.
func (c *Calculator) SumPayout(sales []*model.Sale) int64 {
	var total int64
	for _, s := range sales {
		total += c.Compute(s.Amount)
	}
	return total
}

// SumGross adds up the gross amount of the sales that are still pending.
func SumGross(sales []*model.Sale) int64 {
	var total int64
	for _, s := range sales {
		if !s.Withdrawn {
			total += s.Amount
		}
	}
	return total
}
