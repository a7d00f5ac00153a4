package payout

import (
	"fmt"
	"testing"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/shopspring/decimal"
)

func newDefaultCalculator(t *testing.T) *Calculator {
	t.Helper()

	c, err := ParseCalculator(DefaultTaxRate, DefaultShare)
	if err != nil {
		t.Fatalf("ParseCalculator failed: %v", err)
	}
	return c
}

func TestCompute(t *testing.T) {
	calc := newDefaultCalculator(t)

	tests := []struct {
		name  string
		gross int64
		want  int64
	}{
		{name: "divides evenly", gross: 1100, want: 750},
		{name: "non-terminating rounds up", gross: 1000, want: 682},
		{name: "exact tie rounds half up", gross: 11, want: 8},
		{name: "second exact tie", gross: 33, want: 23},
		{name: "smallest sale", gross: 1, want: 1},
		{name: "rounds down", gross: 2, want: 1},
		{name: "zero", gross: 0, want: 0},
		{name: "negative pays nothing", gross: -500, want: 0},
		{name: "large amount", gross: 1_100_000_000, want: 750_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.Compute(tt.gross); got != tt.want {
				t.Errorf("Compute(%d) = %d, want %d", tt.gross, got, tt.want)
			}
		})
	}
}

func TestComputeNeverExceedsGross(t *testing.T) {
	calc := newDefaultCalculator(t)
	for g := int64(0); g <= 20000; g++ {
		if p := calc.Compute(g); p > g || p < 0 {
			t.Fatalf("Compute(%d) = %d, want 0 <= payout <= gross", g, p)
		}
	}
}

func TestNewCalculatorValidation(t *testing.T) {
	tests := []struct {
		name    string
		tax     string
		share   string
		wantErr bool
	}{
		{name: "defaults", tax: "0.10", share: "0.75"},
		{name: "no tax", tax: "0", share: "1"},
		{name: "negative tax", tax: "-0.1", share: "0.75", wantErr: true},
		{name: "zero share", tax: "0.1", share: "0", wantErr: true},
		{name: "share above one", tax: "0.1", share: "1.2", wantErr: true},
		{name: "not a number", tax: "ten", share: "0.75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCalculator(tt.tax, tt.share)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCalculator(%q, %q) error = %v, wantErr %v", tt.tax, tt.share, err, tt.wantErr)
			}
		})
	}
}

func TestCalculatorAccessors(t *testing.T) {
	calc, err := NewCalculator(decimal.RequireFromString("0.08"), decimal.RequireFromString("0.5"))
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}
	if !calc.TaxRate().Equal(decimal.RequireFromString("0.08")) {
		t.Errorf("TaxRate() = %s, want 0.08", calc.TaxRate())
	}
	if !calc.Share().Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("Share() = %s, want 0.5", calc.Share())
	}
	// 1080 / 1.08 * 0.5 = 500
	if got := calc.Compute(1080); got != 500 {
		t.Errorf("Compute(1080) = %d, want 500", got)
	}
}

func TestSumPayoutAndGross(t *testing.T) {
	calc := newDefaultCalculator(t)
	sales := []*model.Sale{
		{ID: "1", Amount: 1100},
		{ID: "2", Amount: 1000, Withdrawn: true},
		{ID: "3", Amount: 11},
	}

	if got := calc.SumPayout(sales); got != 750+682+8 {
		t.Errorf("SumPayout = %d, want %d", got, 750+682+8)
	}
	if got := SumGross(sales); got != 1111 {
		t.Errorf("SumGross = %d, want 1111 (withdrawn excluded)", got)
	}
	if got := calc.SumPayout(nil); got != 0 {
		t.Errorf("SumPayout(nil) = %d, want 0", got)
	}
	if got := SumGross(nil); got != 0 {
		t.Errorf("SumGross(nil) = %d, want 0", got)
	}
}

func TestSumsAtAmountCapStayPositive(t *testing.T) {
	calc := newDefaultCalculator(t)
	sales := make([]*model.Sale, 1000)
	for i := range sales {
		sales[i] = &model.Sale{ID: fmt.Sprint(i), Amount: constants.MaxAmount}
	}

	if got, want := SumGross(sales), 1000*constants.MaxAmount; got != want {
		t.Errorf("SumGross = %d, want %d", got, want)
	}
	if got := calc.SumPayout(sales); got <= 0 || got > SumGross(sales) {
		t.Errorf("SumPayout = %d, want within (0, gross]", got)
	}
}
