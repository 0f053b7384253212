package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewTaxCalculatorFallsBackOnBadRate(t *testing.T) {
	cases := []string{"", "   ", "not-a-number", "-0.10"}
	for _, raw := range cases {
		calc := NewTaxCalculator(raw)
		if calc.Rate().String() != "0.05" {
			t.Fatalf("rate %q want fallback 0.05 got %s", raw, calc.Rate().String())
		}
	}

	calc := NewTaxCalculator("0.07")
	if calc.Rate().String() != "0.07" {
		t.Fatalf("rate want 0.07 got %s", calc.Rate().String())
	}
}

func TestPriceLineTaxable(t *testing.T) {
	calc := NewTaxCalculator("0.05")
	line := calc.PriceLine(TaxLineInput{
		ProductID: 1,
		Quantity:  3,
		Price:     decimal.RequireFromString("19.99"),
		Taxable:   true,
	})

	if line.PurchasePrice.String() != "19.99" {
		t.Fatalf("purchase price want 19.99 got %s", line.PurchasePrice.String())
	}
	if line.PriceWithTax.String() != "20.99" {
		t.Fatalf("price with tax want 20.99 got %s", line.PriceWithTax.String())
	}
	if line.TotalPrice.String() != "59.97" {
		t.Fatalf("total price want 59.97 got %s", line.TotalPrice.String())
	}
	if line.TotalTax.String() != "3.00" {
		t.Fatalf("total tax want 3.00 got %s", line.TotalTax.String())
	}
}

func TestPriceLineNonTaxable(t *testing.T) {
	calc := NewTaxCalculator("0.05")
	line := calc.PriceLine(TaxLineInput{
		ProductID: 2,
		Quantity:  4,
		Price:     decimal.RequireFromString("24.00"),
		Taxable:   false,
	})

	if !line.TotalTax.IsZero() {
		t.Fatalf("non-taxable tax want 0 got %s", line.TotalTax.String())
	}
	if line.PriceWithTax.String() != "24.00" {
		t.Fatalf("non-taxable price with tax want 24.00 got %s", line.PriceWithTax.String())
	}
	if line.TotalPrice.String() != "96.00" {
		t.Fatalf("total price want 96.00 got %s", line.TotalPrice.String())
	}
}

func TestApplyOrderTaxRoundsOnce(t *testing.T) {
	// 1.05 * 0.07 = 0.0735 per unit. Rounding per unit would give
	// 0.07 * 3 = 0.21; accumulating raw and rounding once gives 0.22.
	calc := NewTaxCalculator("0.07")
	result := calc.ApplyOrderTax([]TaxLineInput{
		{ProductID: 1, Quantity: 3, Price: decimal.RequireFromString("1.05"), Taxable: true},
	})

	if result.TotalTax.String() != "0.22" {
		t.Fatalf("total tax want 0.22 got %s", result.TotalTax.String())
	}
	if result.TotalWithTax.String() != "3.37" {
		t.Fatalf("total with tax want 3.37 got %s", result.TotalWithTax.String())
	}
}

func TestApplyOrderTaxMixedLines(t *testing.T) {
	calc := NewTaxCalculator("0.05")
	result := calc.ApplyOrderTax([]TaxLineInput{
		{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("10.00"), Taxable: true},
		{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("24.00"), Taxable: false},
	})

	if len(result.Lines) != 2 {
		t.Fatalf("lines want 2 got %d", len(result.Lines))
	}
	if result.TotalTax.String() != "1.00" {
		t.Fatalf("total tax want 1.00 got %s", result.TotalTax.String())
	}
	if result.TotalWithTax.String() != "45.00" {
		t.Fatalf("total with tax want 45.00 got %s", result.TotalWithTax.String())
	}
}
